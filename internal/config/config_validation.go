// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] can be used to
// start the server. It runs after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Storage.Memory.Shards < 1 {
		return ErrInvalidStorageConfigs
	}

	return nil
}
