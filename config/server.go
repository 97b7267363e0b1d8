package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Server holds the HTTP listener settings.
type Server struct {
	Protocol string `json:"protocol" yaml:"protocol"`
	Domain   string `json:"domain" yaml:"domain"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BaseURL returns the public base URL, e.g. "http://localhost:8080".
func (s *Server) BaseURL() string {
	if s.Domain != "" {
		return fmt.Sprintf("%s://%s", s.Protocol, s.Domain)
	}
	return fmt.Sprintf("%s://%s:%d", s.Protocol, s.Host, s.Port)
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Protocol: getStringOrDefault(v, "server.protocol", "http"),
		Domain:   v.GetString("server.domain"),
		Host:     getStringOrDefault(v, "server.host", "127.0.0.1"),
		Port:     getIntOrDefault(v, "server.port", 8080),
	}
}
