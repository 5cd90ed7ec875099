package main

import (
	"os"

	"ratchetkeys/cmd/ratchetkeys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
