package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Load reads the optional YAML file at path, then applies environment
// variable overrides. Everything can be configured from the environment
// alone, so path may be empty.
func Load(path string) (*Config, error) {
	config := NewConfig()

	if path != "" {
		loaded, err := LoadFromYAMLPath(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

func LoadFromYAMLPath(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return LoadFromYAML(data)
}

func LoadFromYAML(data []byte) (*Config, error) {
	config := NewConfig()
	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LAMBDA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("LAMBDA_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("INSTANCE_TYPE_NAME"); v != "" {
		c.InstanceTypeName = v
	}
	if v := os.Getenv("SSH_KEY_NAME"); v != "" {
		c.SSHKeyName = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DRY_RUN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DRY_RUN: %s", err)
		}
		c.DryRun = b
	}

	if v := os.Getenv("CHECK_INTERVAL_SECONDS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHECK_INTERVAL_SECONDS: %s", err)
		}
		c.CheckIntervalSeconds = i
	}
	if v := os.Getenv("ERROR_WAIT_SECONDS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ERROR_WAIT_SECONDS: %s", err)
		}
		c.ErrorWaitSeconds = i
	}
	if v := os.Getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("PORT: %s", err)
		}
		c.HTTPAddr = "0.0.0.0:" + v
	}

	return nil
}
