package models

// User is identified by its GitHub login.
type User struct {
	GithubLogin string  `json:"github_login" yaml:"githubLogin"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
	Avatar      *string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}
