package config

import "sync"

// Updater applies settings changed at runtime to its own copy of the
// configuration and saves them one at a time. Changes carrying a revision
// older than the last one applied are ignored.
type Updater struct {
	mu       sync.Mutex
	service  ConfigService
	config   Config
	revision uint64
}

// NewUpdater creates an updater starting from a copy of cfg
func NewUpdater(service ConfigService, cfg *Config) *Updater {
	return &Updater{service: service, config: *cfg}
}

// SetLightTheme saves the theme choice made at the given revision
func (u *Updater) SetLightTheme(revision uint64, light bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if revision <= u.revision {
		return nil
	}
	u.revision = revision
	u.config.LightTheme = light

	cfg := u.config
	return u.service.Save(&cfg)
}
