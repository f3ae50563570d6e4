package cli

import (
	"os"

	"github.com/mitchellh/cli"
)

func Commands() map[string]cli.CommandFactory {
	ui := &cli.PrefixedUi{
		Ui: &cli.BasicUi{
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		OutputPrefix: "DEBUG: ",
		InfoPrefix:   "INFO:  ",
		ErrorPrefix:  "ERROR: ",
		WarnPrefix:   "WARN:  ",
	}

	return map[string]cli.CommandFactory{
		"watch": func() (cli.Command, error) {
			return &WatchCommand{
				ui: ui,
			}, nil
		},
		"config": func() (cli.Command, error) {
			return &ConfigCommand{
				ui: ui,
			}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{}, nil
		},
	}
}
