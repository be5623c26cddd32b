package main

import "photo-organiser/cmd"

func main() {
	cmd.Execute()
}
