package main

import "github.com/ashidesu/Foodie-business/app"

func main() {
	app.Run()
}
