package logger

import (
	"regexp"
	"strings"

	"github.com/ncobase/mediator/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Desensitizer masks sensitive log fields before they are written.
type Desensitizer struct {
	fields   []string
	patterns []*regexp.Regexp
	mask     string
}

// NewDesensitizer creates a desensitizer. Invalid custom patterns are skipped.
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	if cfg == nil {
		cfg = config.DefaultDesensitization()
	}
	d := &Desensitizer{mask: strings.Repeat(cfg.MaskChar, max(cfg.MaskLength, 1))}
	for _, f := range cfg.SensitiveFields {
		d.fields = append(d.fields, strings.ToLower(f))
	}
	for _, p := range cfg.CustomPatterns {
		if re, err := regexp.Compile(p); err == nil {
			d.patterns = append(d.patterns, re)
		}
	}
	return d
}

func (d *Desensitizer) isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, f := range d.fields {
		if strings.Contains(key, f) {
			return true
		}
	}
	return false
}

// Mask returns fields with sensitive values replaced.
func (d *Desensitizer) Mask(fields logrus.Fields) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for k, v := range fields {
		switch {
		case d.isSensitive(k):
			out[k] = d.mask
		default:
			if s, ok := v.(string); ok {
				for _, re := range d.patterns {
					s = re.ReplaceAllString(s, d.mask)
				}
				out[k] = s
			} else {
				out[k] = v
			}
		}
	}
	return out
}

// Levels implements logrus.Hook.
func (d *Desensitizer) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (d *Desensitizer) Fire(entry *logrus.Entry) error {
	entry.Data = d.Mask(entry.Data)
	return nil
}
