package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetConfigDefaults(t *testing.T) {
	c := GetConfig(viper.New())
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, OutputStdout, c.Output)
	assert.True(t, c.Desensitization.Enabled)
	assert.Equal(t, logrus.InfoLevel, c.LogrusLevel())
}

func TestGetConfigSection(t *testing.T) {
	v := viper.New()
	v.Set("logger.level", 5)
	v.Set("logger.format", "text")
	v.Set("logger.desensitization.enabled", false)

	c := GetConfig(v)
	assert.Equal(t, "text", c.Format)
	assert.Equal(t, OutputStdout, c.Output)
	assert.Equal(t, logrus.DebugLevel, c.LogrusLevel())
	assert.False(t, c.Desensitization.Enabled)
	assert.Equal(t, "*", c.Desensitization.MaskChar)
}

func TestLogrusLevelBounds(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, logrus.InfoLevel, nilCfg.LogrusLevel())
	assert.Equal(t, logrus.InfoLevel, (&Config{Level: 42}).LogrusLevel())
	assert.Equal(t, logrus.TraceLevel, (&Config{Level: 6}).LogrusLevel())
}
