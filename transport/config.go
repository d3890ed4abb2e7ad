package transport

import (
	"net/url"
	"strconv"
	"time"
)

const DefaultAddress = "localhost:6379"

// Config describes how to reach the server. Connection, when set, is a complete redis:// or rediss:// URL and takes
// precedence over the individual fields.
type Config struct {
	Connection   string        `json:"connection" yaml:"connection"`
	Address      string        `json:"addr" yaml:"addr"`
	Database     int           `json:"database" yaml:"database"`
	Username     string        `json:"username" yaml:"username"`
	Secret       string        `json:"secret" yaml:"secret"`
	TLS          bool          `json:"tls" yaml:"tls"`
	PoolSize     int           `json:"pool_size" yaml:"pool_size"`
	DialTimeout  time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
}

func (s Config) ConnectionString() string {
	if s.Connection != "" {
		return s.Connection
	}

	var (
		address = s.Address
		scheme  = "redis"
	)

	if address == "" {
		address = DefaultAddress
	}

	if s.TLS {
		scheme = "rediss"
	}

	connectionURL := url.URL{
		Scheme: scheme,
		Host:   address,
		Path:   "/" + strconv.Itoa(s.Database),
	}

	if s.Username != "" || s.Secret != "" {
		connectionURL.User = url.UserPassword(s.Username, s.Secret)
	}

	return connectionURL.String()
}
