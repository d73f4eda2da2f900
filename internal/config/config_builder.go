package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	configs []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		configs: make([]*Settings, 0, 3),
	}
}

// build merges the collected layers in order; non-zero fields of a later
// layer override earlier ones.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, cfg := range b.configs {
		if err := mergo.Merge(settings, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.configs = append(b.configs, &Settings{
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       DefaultLogLevel,
	})
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *settingsBuilder) withFlags(opts *Options) *settingsBuilder {
	if opts == nil {
		return b
	}

	flagCfg := opts.Settings
	b.configs = append(b.configs, &flagCfg)
	return b
}
