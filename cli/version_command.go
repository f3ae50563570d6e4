package cli

import "fmt"

const Version = "0.1.0"

type VersionCommand struct {
}

func (c *VersionCommand) Help() string {
	return "Show version"
}

func (c *VersionCommand) Synopsis() string {
	return "Show version"
}

func (c *VersionCommand) Run(args []string) int {
	fmt.Printf("lambdalabs-bot %s\n", Version)
	return 0
}
