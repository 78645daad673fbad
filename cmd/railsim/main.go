package main

import "railsim/internal/app"

func main() {
	app.RunDesktop()
}
