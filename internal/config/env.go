package config

import "github.com/spf13/viper"

// Env holds the environment variables that influence a run.
type Env struct {
	// ConfigPath is SKIP_RM_CONFIG: an explicit config file that replaces
	// the search order.
	ConfigPath string
	// Debug is SKIP_RM_DEBUG: forces debug-level logging.
	Debug bool
	// ConfigHome is XDG_CONFIG_HOME.
	ConfigHome string
}

// LoadEnv reads Env from the process environment.
func LoadEnv() Env {
	v := viper.New()
	v.SetEnvPrefix("SKIP_RM")
	v.AutomaticEnv()
	_ = v.BindEnv("config_home", "XDG_CONFIG_HOME")

	return Env{
		ConfigPath: v.GetString("config"),
		Debug:      v.GetBool("debug"),
		ConfigHome: v.GetString("config_home"),
	}
}
