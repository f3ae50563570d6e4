package cli

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/mitchellh/cli"
	"github.com/sirupsen/logrus"
	"github.com/yekta/lambdalabs-bot/config"
	"github.com/yekta/lambdalabs-bot/httpapi"
	"github.com/yekta/lambdalabs-bot/lambdacloud"
	"github.com/yekta/lambdalabs-bot/status"
	"github.com/yekta/lambdalabs-bot/watcher"
)

type WatchCommand struct {
	ui cli.Ui
}

func (c *WatchCommand) Help() string {
	return `Usage: lambdalabs-bot watch [-config-path PATH]

  Polls Lambda Cloud until the configured instance type has capacity in
  some region, launches a single instance there, and keeps serving the
  status API afterwards. All options can also be set via environment
  variables (LAMBDA_API_KEY, SSH_KEY_NAME, INSTANCE_TYPE_NAME, ...).`
}

func (c *WatchCommand) Synopsis() string {
	return "Watch instance type availability and launch an instance"
}

func (c *WatchCommand) Run(args []string) int {
	flags := flag.NewFlagSet("watch", flag.ContinueOnError)
	configPath := flags.String("config-path", "", "config path")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if err := godotenv.Load(); err != nil {
		c.ui.Info("No .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	if err := config.Validate(cfg); err != nil {
		c.ui.Error("Validation error:")
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	setLogLevel(cfg.LogLevel)
	log.Printf("[DEBUG] loaded config: %+v", cfg)

	client := lambdacloud.NewClient(cfg.APIURL, cfg.APIKey)
	if cfg.LogLevel == "DEBUG" {
		client.Logger.SetLevel(logrus.DebugLevel)
	}

	store := status.NewStore()

	server := &httpapi.Server{
		Ui:     c.ui,
		Status: store,
		Addr:   cfg.HTTPAddr,
	}
	if err := server.Start(); err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	w := &watcher.Watcher{
		Ui:     c.ui,
		API:    client,
		Status: store,
		Config: cfg,
	}
	if err := w.Start(); err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	c.ui.Info("Polling stopped, still serving the status API")
	select {}
}
