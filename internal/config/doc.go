// Package config loads and validates the engine's process-wide tuning:
// scheduler parameters, the XP award table, level thresholds and selector
// defaults. Configuration is read once at startup and treated as immutable
// afterwards.
package config
