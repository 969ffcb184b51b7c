package main

import (
	"os"

	"github.com/awnumar/memguard"
	"github.com/systmms/summon-keepass/cmd/summon-keepass/commands"
)

var version = "0.5.0"

func main() {
	code := commands.Run(os.Args[1:], commands.DefaultOptions(version))
	memguard.Purge()
	os.Exit(code)
}
