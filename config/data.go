package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data represents the data configuration
type Data struct {
	Redis *Redis `json:"redis" yaml:"redis"`
}

// Redis redis config struct
type Redis struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Username     string        `json:"username" yaml:"username"`
	Password     string        `json:"password" yaml:"password"`
	Db           int           `json:"db" yaml:"db"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	DialTimeout  time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
}

// Enabled reports whether an address is configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Addr != ""
}

func getDataConfig(v *viper.Viper) *Data {
	return &Data{Redis: getRedisConfig(v)}
}

func getRedisConfig(v *viper.Viper) *Redis {
	return &Redis{
		Addr:         v.GetString("data.redis.addr"),
		Username:     v.GetString("data.redis.username"),
		Password:     v.GetString("data.redis.password"),
		Db:           v.GetInt("data.redis.db"),
		ReadTimeout:  getDurationOrDefault(v, "data.redis.read_timeout", 3*time.Second),
		WriteTimeout: getDurationOrDefault(v, "data.redis.write_timeout", 3*time.Second),
		DialTimeout:  getDurationOrDefault(v, "data.redis.dial_timeout", 5*time.Second),
	}
}
