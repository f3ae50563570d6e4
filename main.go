package main

import (
	"os"

	"github.com/yekta/lambdalabs-bot/cli"
)

func main() {
	exitCode := cli.Run(os.Args[1:])
	os.Exit(exitCode)
}
