// Package common holds the flags shared by every vitelink subcommand and
// turns them into a configuration.
package common

import (
	"context"

	"github.com/bmeg/vitelink/config"
	"github.com/bmeg/vitelink/manifest"
	"github.com/bmeg/vitelink/vite"
)

var (
	ConfigFile   string
	Mode         string
	Host         string
	ManifestPath string
	Verbose      bool
	JSONLog      bool
)

// Config reads the config file (or the environment when no file is given)
// and applies the command line overrides.
func Config() (*config.Config, error) {
	var conf *config.Config
	var err error
	if ConfigFile != "" {
		conf, err = config.LoadFile(ConfigFile)
	} else {
		conf, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}
	if Mode != "" {
		m, err := config.ParseMode(Mode)
		if err != nil {
			return nil, err
		}
		conf.Mode = m
	}
	if Host != "" {
		conf.Host = Host
	}
	if ManifestPath != "" {
		conf.ManifestPath = ManifestPath
		conf.ManifestSource = ""
	}
	return conf, nil
}

func Vite(ctx context.Context) (*vite.Vite, error) {
	conf, err := Config()
	if err != nil {
		return nil, err
	}
	return vite.NewFromConfig(ctx, conf)
}

// Manifest loads the configured manifest whatever the mode.
func Manifest(ctx context.Context) (*manifest.Manifest, error) {
	conf, err := Config()
	if err != nil {
		return nil, err
	}
	if conf.ManifestSource != "" {
		return manifest.Parse([]byte(conf.ManifestSource))
	}
	return manifest.LoadFile(ctx, conf.ManifestPath)
}
