package main

import "collabotree_backend/internal/app"

func main() {
	app.Run()
}
