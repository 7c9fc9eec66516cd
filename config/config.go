package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	RoundRobinTimeQuantum int
	IncludeIdle           bool
}

const envPrefix = "SCHEDSIM"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.include_idle", false)
}

// Load reads the scheduler configuration. With an empty path it looks for
// ./config.yaml and falls back to defaults when there is none; an explicit path
// must exist. SCHEDSIM_* environment variables override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		IncludeIdle:           v.GetBool("scheduler.include_idle"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port must be in 1..65535, got %d", c.Port)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be >= 1, got %d", c.RoundRobinTimeQuantum)
	}
	return nil
}

func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
