package config

import "fmt"

// Config represents the complete configuration structure
type Config struct {
	Phases    map[string]PhaseConfig `mapstructure:"phases"`
	Proxy     EndpointConfig         `mapstructure:"proxy"`
	Nominatim EndpointConfig         `mapstructure:"nominatim"`
	BasePath  string                 `mapstructure:"base_path"`
	Auth      AuthConfig             `mapstructure:"auth"`
	Logging   LoggingConfig          `mapstructure:"logging"`
}

// PhaseConfig holds the per-deployment-phase service endpoints
type PhaseConfig struct {
	API EndpointConfig `mapstructure:"api"`
}

// EndpointConfig is a host/port pair for a single service
type EndpointConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Address returns the endpoint as an http base address
func (e EndpointConfig) Address() string {
	return fmt.Sprintf("http://%s:%d", e.Host, e.Port)
}

// AuthConfig holds the optional API credentials. Leaving either field empty
// puts the client into unauthenticated, read-only mode.
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// DataServiceAddress resolves the base address of the building-stock data
// service for the given phase. When proxy is true the shared proxy endpoint
// is used instead of the phase endpoint; the proxy is needed on cluster
// compute nodes without direct access to the service network.
func (c *Config) DataServiceAddress(phase string, proxy bool) (string, error) {
	if proxy {
		return c.Proxy.Address(), nil
	}
	p, ok := c.Phases[phase]
	if !ok {
		return "", fmt.Errorf("unknown phase: %s", phase)
	}
	return p.API.Address(), nil
}

// NominatimAddress resolves the base address of the reverse-geocoding service.
func (c *Config) NominatimAddress(proxy bool) string {
	if proxy {
		return c.Proxy.Address()
	}
	return c.Nominatim.Address()
}
