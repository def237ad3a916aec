package main

import "photoshare-api/internal/app"

func main() {
	app.Run()
}
