package main

import (
	"fmt"

	"github.com/pvoronin/bugrep/internal/configfile"
	"github.com/pvoronin/bugrep/internal/session"
)

// ensureConfig loads the config file, prompting once for any missing [core]
// key and persisting the result. This bootstrap runs before any store
// access; a file that cannot be read or written aborts startup.
func ensureConfig(p session.Prompter) (*configfile.Config, error) {
	cfg, err := configfile.Load(configDir)
	if err != nil {
		return nil, err
	}
	created := cfg == nil
	if created {
		cfg = configfile.Default()
	}

	missing := cfg.MissingKeys()
	if len(missing) == 0 && !created {
		return cfg, nil
	}

	for _, key := range missing {
		var label string
		switch key {
		case "author":
			label = "Author name"
		case "xlsx":
			label = "Store file path (xlsx)"
		case "output_md":
			label = "Output directory for documents"
		}
		value, err := p.Text(label, true)
		if err != nil {
			return nil, err
		}
		if err := cfg.Set("core."+key, value); err != nil {
			return nil, err
		}
	}

	if err := cfg.Save(configDir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireConfig loads the config for read-only commands, which never prompt.
func requireConfig() (*configfile.Config, error) {
	cfg, err := configfile.Load(configDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config found in %s (run 'bugrep new' once to set it up)", configDir)
	}
	return cfg, nil
}
