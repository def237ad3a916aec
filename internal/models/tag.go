package models

// TagLink associates a user with a photo they appear in.
type TagLink struct {
	PhotoID int    `json:"photo_id" yaml:"photoID"`
	UserID  string `json:"user_id" yaml:"userID"`
}
