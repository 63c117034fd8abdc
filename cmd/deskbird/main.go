package main

import "github.com/eternauta1337/skill-deskbird/internal/cli"

func main() {
	cli.Execute()
}
