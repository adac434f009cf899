package main

import (
	"github.com/lazycommit/lazycommit/internal/commands"
)

func main() {
	commands.Execute()
}
