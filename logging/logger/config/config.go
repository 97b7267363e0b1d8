package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Output targets
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Config configuration struct
type Config struct {
	Level           int              `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
}

// Default returns JSON logging to stdout at info level.
func Default() *Config {
	return &Config{
		Format:          "json",
		Output:          OutputStdout,
		Desensitization: DefaultDesensitization(),
	}
}

// LogrusLevel maps Level to a logrus level; zero or out of range means info.
func (c *Config) LogrusLevel() logrus.Level {
	if c == nil || c.Level <= 0 || c.Level > int(logrus.TraceLevel) {
		return logrus.InfoLevel
	}
	return logrus.Level(c.Level)
}

// GetConfig reads the "logger" section, filling the defaults.
func GetConfig(v *viper.Viper) *Config {
	c := Default()
	if !v.IsSet("logger") {
		return c
	}
	c.Level = v.GetInt("logger.level")
	if f := v.GetString("logger.format"); f != "" {
		c.Format = f
	}
	if o := v.GetString("logger.output"); o != "" {
		c.Output = o
	}
	c.OutputFile = v.GetString("logger.output_file")
	c.Desensitization = getDesensitizationConfigs(v)
	return c
}
