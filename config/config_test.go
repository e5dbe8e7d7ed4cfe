package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Phases: map[string]PhaseConfig{
			"staging": {API: EndpointConfig{Host: "localhost", Port: 8000}},
		},
		BasePath: "/api/v0/",
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			modify: func(cfg *Config) {},
		},
		{
			name:    "no phases",
			modify:  func(cfg *Config) { cfg.Phases = nil },
			wantErr: true,
		},
		{
			name:    "missing api host",
			modify:  func(cfg *Config) { cfg.Phases["staging"] = PhaseConfig{API: EndpointConfig{Port: 8000}} },
			wantErr: true,
		},
		{
			name:    "invalid port",
			modify:  func(cfg *Config) { cfg.Phases["staging"] = PhaseConfig{API: EndpointConfig{Host: "x", Port: -1}} },
			wantErr: true,
		},
		{
			name:    "missing base path",
			modify:  func(cfg *Config) { cfg.BasePath = "" },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			modify:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			modify:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDataServiceAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Proxy = EndpointConfig{Host: "proxy.internal", Port: 3128}

	addr, err := cfg.DataServiceAddress("staging", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != "http://localhost:8000" {
		t.Errorf("unexpected address: %s", addr)
	}

	addr, err = cfg.DataServiceAddress("staging", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != "http://proxy.internal:3128" {
		t.Errorf("unexpected proxy address: %s", addr)
	}

	if _, err := cfg.DataServiceAddress("production", false); err == nil {
		t.Error("expected error for unknown phase")
	}
}
