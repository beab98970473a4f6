package main

import "mini-dating-backend/cmd"

func main() {
	cmd.Run()
}
