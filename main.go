package main

import (
	"github.com/perfviz/netcompare/commands"
)

func main() {
	commands.Execute()
}
