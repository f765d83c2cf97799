package client

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

// Environment selects the Paradex deployment a client dials.
const (
	EnvironmentTestnet = "testnet"
	EnvironmentProd    = "prod"
)

// Config carries the connection and server settings.
type Config struct {
	// ServerName is the advertised service name.
	ServerName string

	// ServerPort is the port the surrounding service listens on.
	ServerPort int

	// Environment is the Paradex deployment, EnvironmentTestnet or
	// EnvironmentProd.
	Environment string

	// AccountAddress is the trading account's onchain address. Optional;
	// public endpoints work without it.
	AccountAddress string

	// AccountPrivateKey signs onboarding and order requests. When empty
	// the client stays unauthenticated.
	AccountPrivateKey string
}

// LoadConfig reads settings from the environment. PARADEX_* variables
// configure the exchange connection, SERVER_* the surrounding service.
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"server.name":         "Paradex Trading",
		"server.port":         3000,
		"paradex.environment": EnvironmentProd,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("load config defaults: %w", err)
	}

	for _, prefix := range []string{"PARADEX_", "SERVER_"} {
		if err := k.Load(env.Provider(prefix, ".", envKey(prefix)), nil); err != nil {
			return Config{}, fmt.Errorf("load %s env: %w", prefix, err)
		}
	}

	cfg := Config{
		ServerName:        k.String("server.name"),
		ServerPort:        k.Int("server.port"),
		Environment:       k.String("paradex.environment"),
		AccountAddress:    k.String("paradex.account.address"),
		AccountPrivateKey: k.String("paradex.account.private.key"),
	}

	if cfg.Environment != EnvironmentTestnet && cfg.Environment != EnvironmentProd {
		return Config{}, fmt.Errorf("invalid PARADEX_ENVIRONMENT %q, want %q or %q",
			cfg.Environment, EnvironmentTestnet, EnvironmentProd)
	}

	return cfg, nil
}

// envKey maps an environment variable to a koanf key: SERVER_NAME
// becomes server.name, PARADEX_ACCOUNT_ADDRESS paradex.account.address.
func envKey(prefix string) func(string) string {
	ns := strings.ToLower(strings.TrimSuffix(prefix, "_"))

	return func(s string) string {
		rest := strings.ToLower(strings.TrimPrefix(s, prefix))

		return ns + "." + strings.ReplaceAll(rest, "_", ".")
	}
}

// IsConfigured reports whether the config carries credentials for
// authenticated endpoints.
func (c Config) IsConfigured() bool {
	return c.AccountPrivateKey != ""
}
