// Package config loads the editor configuration from a TOML file.
//
// A missing file is not an error; every key has a default. Load decodes
// the file strictly, so an unknown key is reported with its position,
// and then validates the values that other packages interpret (tab stop,
// key names, colours, durations) so mistakes surface before the terminal
// is switched to raw mode.
package config
