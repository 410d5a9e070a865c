// Package config loads, normalizes, and validates lrcmaker configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LRCMAKER_DATA_DIR. The Config type centralizes the knobs the CLI needs:
// where drafts and preferences live, how logs are emitted, and the parse and
// render defaults applied to LRC files.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
