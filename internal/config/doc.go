// SPDX-License-Identifier: MPL-2.0

// Package config handles argvkit configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the platform config directory
// ($XDG_CONFIG_HOME/argvkit on Linux, ~/Library/Application Support/argvkit on
// macOS, %APPDATA%\argvkit on Windows), from ./config.cue, or from the file
// given with --config. The file is validated against the embedded #Config
// schema (config_schema.cue) before it is merged over the defaults.
// Environment variables prefixed with ARGVKIT_ override both, for example
// ARGVKIT_OUTPUT=json or ARGVKIT_UI_VERBOSE=true.
package config
