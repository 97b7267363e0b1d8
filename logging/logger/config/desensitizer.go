package config

import "github.com/spf13/viper"

// Desensitization holds desensitization settings
type Desensitization struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
	CustomPatterns  []string `json:"custom_patterns" yaml:"custom_patterns"`
	MaskChar        string   `json:"mask_char" yaml:"mask_char"`
	MaskLength      int      `json:"mask_length" yaml:"mask_length"`
}

var defaultSensitiveFields = []string{
	"password", "passwd", "pwd",
	"token", "secret", "api_key", "apikey",
	"credit_card", "card_number",
}

const (
	defaultMaskChar   = "*"
	defaultMaskLength = 6
)

// DefaultDesensitization masks the usual credential fields.
func DefaultDesensitization() *Desensitization {
	return &Desensitization{
		Enabled:         true,
		SensitiveFields: defaultSensitiveFields,
		MaskChar:        defaultMaskChar,
		MaskLength:      defaultMaskLength,
	}
}

func getDesensitizationConfigs(v *viper.Viper) *Desensitization {
	if !v.IsSet("logger.desensitization") {
		return DefaultDesensitization()
	}

	c := &Desensitization{
		Enabled:         v.GetBool("logger.desensitization.enabled"),
		SensitiveFields: v.GetStringSlice("logger.desensitization.sensitive_fields"),
		CustomPatterns:  v.GetStringSlice("logger.desensitization.custom_patterns"),
		MaskChar:        v.GetString("logger.desensitization.mask_char"),
		MaskLength:      v.GetInt("logger.desensitization.mask_length"),
	}
	if len(c.SensitiveFields) == 0 {
		c.SensitiveFields = defaultSensitiveFields
	}
	if c.MaskChar == "" {
		c.MaskChar = defaultMaskChar
	}
	if c.MaskLength <= 0 {
		c.MaskLength = defaultMaskLength
	}
	return c
}
