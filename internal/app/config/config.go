package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	NetAddr         string        `env:"RUN_ADDRESS"`
	Providers       string        `env:"PROVIDERS"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT"`
	LogLevel        string        `env:"LOG_LEVEL"`
}

// ProviderConfig describes one integrated payment provider: its stable
// name, the base address of its API and the payment methods it accepts.
type ProviderConfig struct {
	Name    string
	Address string
	Methods []string
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	flag.StringVar(&config.Providers, "p", "", "provider registry in format: name=address|METHOD,METHOD;name2=address2|METHOD")
	flag.DurationVar(&config.ProviderTimeout, "t", 3*time.Second, "request timeout for provider calls")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}

// ParseProviders splits the provider registry string into per-provider
// configs. Registration order is preserved: it is the tie-break order of
// the selector.
func ParseProviders(registry string) ([]ProviderConfig, error) {
	if len(registry) == 0 {
		return nil, nil
	}

	entries := strings.Split(registry, ";")
	providers := make([]ProviderConfig, 0, len(entries))

	for _, entry := range entries {
		name, rest, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("provider entry %q: expected name=address|methods", entry)
		}

		address, methods, ok := strings.Cut(rest, "|")
		if !ok {
			return nil, fmt.Errorf("provider entry %q: expected name=address|methods", entry)
		}

		name = strings.TrimSpace(name)
		address = strings.TrimSpace(address)
		if len(name) == 0 || len(address) == 0 {
			return nil, fmt.Errorf("provider entry %q: empty name or address", entry)
		}

		config := ProviderConfig{
			Name:    name,
			Address: address,
		}
		for _, method := range strings.Split(methods, ",") {
			method = strings.TrimSpace(method)
			if len(method) != 0 {
				config.Methods = append(config.Methods, method)
			}
		}
		if len(config.Methods) == 0 {
			return nil, fmt.Errorf("provider entry %q: no payment methods", entry)
		}

		providers = append(providers, config)
	}

	return providers, nil
}
