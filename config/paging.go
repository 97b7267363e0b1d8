package config

import (
	"github.com/ncobase/mediator/paging"
	"github.com/spf13/viper"
)

// Paging holds the page size bounds.
type Paging = paging.Options

func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		MinLimit:     getIntOrDefault(v, "paging.min_limit", paging.MinLimit),
		MaxLimit:     getIntOrDefault(v, "paging.max_limit", paging.MaxLimit),
		DefaultLimit: getIntOrDefault(v, "paging.default_limit", paging.DefaultLimit),
	}
}
