package config

import (
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file for changes and reloads automatically.
// An invalid edit keeps the previous configuration active; the error is logged
// and passed to OnReloadError callbacks.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			m.log.Warn().Err(err).Msg("failed to reload config")
			m.notifyErrorCallbacksLocked(err)
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// Reload re-reads the config file and notifies OnConfigChange callbacks.
func (m *Manager) Reload() error {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.notifyCallbacksLocked()
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// notifyErrorCallbacksLocked is notifyCallbacksLocked for reload failures.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyErrorCallbacksLocked(err error) {
	callbacks := make([]func(error), len(m.errorCbs))
	copy(callbacks, m.errorCbs)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(err)
	}
}

// OnReloadError registers a callback for config edits that fail to load.
func (m *Manager) OnReloadError(callback func(error)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorCbs = append(m.errorCbs, callback)
}
