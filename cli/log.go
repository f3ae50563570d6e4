package cli

import (
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

func setLogLevel(level string) {
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel(level),
		Writer:   os.Stdout,
	}
	log.SetOutput(filter)
}
