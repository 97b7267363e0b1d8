package config

import (
	"time"

	"github.com/spf13/viper"
)

// Sentry config struct
type Sentry struct {
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	Environment string `json:"environment" yaml:"environment"`
	Release     string `json:"release" yaml:"release"`
}

// Enabled reports whether a DSN is configured.
func (s *Sentry) Enabled() bool {
	return s != nil && s.Endpoint != ""
}

// Tracer config struct for the OTLP gRPC exporter
type Tracer struct {
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	ServiceName string `json:"service_name" yaml:"service_name"`
	Environment string `json:"environment" yaml:"environment"`
	// 0.0 to 1.0
	SamplingRate float64 `json:"sampling_rate" yaml:"sampling_rate"`

	MaxExportBatchSize int           `json:"max_export_batch_size" yaml:"max_export_batch_size"`
	BatchTimeout       time.Duration `json:"batch_timeout" yaml:"batch_timeout"`
	ExportTimeout      time.Duration `json:"export_timeout" yaml:"export_timeout"`
}

// Enabled reports whether an exporter endpoint is configured.
func (t *Tracer) Enabled() bool {
	return t != nil && t.Endpoint != ""
}

// Service returns the configured service name, or fallback.
func (t *Tracer) Service(fallback string) string {
	if t == nil || t.ServiceName == "" {
		return fallback
	}
	return t.ServiceName
}

// Observes config struct
type Observes struct {
	Sentry *Sentry
	Tracer *Tracer
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: &Sentry{
			Endpoint:    v.GetString("observes.sentry.endpoint"),
			Environment: v.GetString("observes.sentry.environment"),
			Release:     v.GetString("observes.sentry.release"),
		},
		Tracer: &Tracer{
			Endpoint:           v.GetString("observes.tracer.endpoint"),
			ServiceName:        v.GetString("observes.tracer.service_name"),
			Environment:        v.GetString("observes.tracer.environment"),
			SamplingRate:       min(max(getFloat64OrDefault(v, "observes.tracer.sampling_rate", 1.0), 0), 1),
			MaxExportBatchSize: getIntOrDefault(v, "observes.tracer.max_export_batch_size", 512),
			BatchTimeout:       getDurationOrDefault(v, "observes.tracer.batch_timeout", 5*time.Second),
			ExportTimeout:      getDurationOrDefault(v, "observes.tracer.export_timeout", 30*time.Second),
		},
	}
}
