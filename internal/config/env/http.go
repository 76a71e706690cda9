package env

import (
	"mines_backend/internal/config"
	"net"
	"os"
)

const (
	httpAddressEnvName = "HTTP_ADDRESS"
	defaultHTTPAddress = ":8080"
)

type httpConfig struct {
	address string
}

// NewHTTPConfig - адрес HTTP сервера из HTTP_ADDRESS, по умолчанию :8080
func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddressEnvName)
	if len(address) == 0 {
		address = defaultHTTPAddress
	}

	if _, _, err := net.SplitHostPort(address); err != nil {
		return nil, err
	}

	return &httpConfig{
		address: address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
