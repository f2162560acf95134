package main

import "github.com/gridsnake/engine/cmd/snake/commands"

func main() {
	commands.Execute()
}
