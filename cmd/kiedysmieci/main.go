package main

import (
	"github.com/szyszomat/KiedySmieciKRK/internal/commands"
)

func main() {
	commands.Execute()
}
