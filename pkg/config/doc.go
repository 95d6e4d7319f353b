// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (to read an optional .env file once per
// process) and github.com/caarlos0/env/v11 (to parse tagged struct fields).
// Every configuration type is parsed at most once; later calls return the
// cached copy.
//
// # Usage
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	// Namespaced: reads TENANT_A_SESSION_SECRET etc.
//	var tenantCfg session.Config
//	err := config.Load(&tenantCfg, config.WithPrefix("TENANT_A_"))
//
// MustLoad panics on failure and suits values a binary cannot start without.
// Reset clears the cache and is intended for tests.
package config
