// Package config loads, validates, and normalizes tubescribe configuration.
//
// Configuration comes from a TOML file (~/.config/tubescribe/config.toml or
// ./tubescribe.toml) layered with the environment variables the tool has
// always honored. Path fields are expanded (~) and normalized to absolute
// paths before any other package sees them.
package config
