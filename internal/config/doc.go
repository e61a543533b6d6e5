// Package config loads and validates rangeshift's TOML configuration.
//
// Defaults cover every setting, so the tool runs without a config file.
// Load applies ~ expansion and normalization before validation; callers
// receive absolute paths and lowercase tokens.
package config
