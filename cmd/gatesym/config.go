package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the optional gatesym.toml settings: the default word width
// used by the adder command when --width isn't given on the command line.
type config struct {
	Width int `toml:"width"`
}

// loadConfig reads path if it exists, returning zero-value config (with
// Width left to the caller's own default) if it doesn't.
func loadConfig(path string) (config, error) {
	var cfg config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
