package config

import (
	"time"
)

const DefaultAPIURL = "https://cloud.lambdalabs.com/api/v1/"

type Config struct {
	APIKey               string `yaml:"APIKey" validate:"required"`
	APIURL               string `yaml:"APIURL" validate:"required"`
	InstanceTypeName     string `yaml:"InstanceTypeName" validate:"required"`
	SSHKeyName           string `yaml:"SSHKeyName" validate:"required"`
	CheckIntervalSeconds int    `yaml:"CheckIntervalSeconds" validate:"min=1"`
	ErrorWaitSeconds     int    `yaml:"ErrorWaitSeconds" validate:"min=1"`
	HTTPAddr             string `yaml:"HTTPAddr" validate:"required"`
	LogLevel             string `yaml:"LogLevel"`
	DryRun               bool   `yaml:"DryRun"`
}

func NewConfig() *Config {
	return &Config{
		APIURL:               DefaultAPIURL,
		InstanceTypeName:     "gpu_1x_a6000",
		CheckIntervalSeconds: 30,
		ErrorWaitSeconds:     10,
		HTTPAddr:             "0.0.0.0:5000",
		LogLevel:             "INFO",
	}
}

func (c *Config) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

func (c *Config) ErrorWait() time.Duration {
	return time.Duration(c.ErrorWaitSeconds) * time.Second
}
