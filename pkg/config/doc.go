// Package config loads environment-based configuration into tagged structs.
//
// Each config type is parsed once per process and cached, so configuration
// is effectively immutable after startup and safe to share across
// goroutines. An optional .env file is honored on first use.
//
//	var cfg csrf.Config
//	config.MustLoad(&cfg)
package config
