package cli

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mitchellh/cli"
	"github.com/yekta/lambdalabs-bot/config"
)

type ConfigCommand struct {
	ui cli.Ui
}

func (c *ConfigCommand) Help() string {
	return "Usage: lambdalabs-bot config [-config-path PATH]"
}

func (c *ConfigCommand) Synopsis() string {
	return "Show config in parsed format"
}

func (c *ConfigCommand) Run(args []string) int {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	path := flags.String("config-path", "", "config path")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if err := godotenv.Load(); err != nil {
		c.ui.Info("No .env file found")
	}

	cfg, err := config.Load(*path)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	if err := config.Validate(cfg); err != nil {
		c.ui.Error("Validation error:")
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	c.ui.Output(fmt.Sprintf("%+v", cfg))

	return 0
}
