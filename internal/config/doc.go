// Package config holds the renamer Configuration value and loads it from
// disk.
//
// Configuration files are JSON, optionally with comments (JSONC): this
// package uses github.com/tidwall/jsonc to strip comments and trailing
// commas before parsing with encoding/json. Files ending in .yaml or .yml
// are parsed with gopkg.in/yaml.v3 instead. Both formats share the same
// field names; any absent field takes its zero value.
//
// Key responsibilities:
//   - Define Configuration and SkipRules with an explicit String() dump
//   - Load and validate a configuration file
//   - Locate the configuration file in the standard search paths
//   - Write a default configuration for `renamer config init`
package config
