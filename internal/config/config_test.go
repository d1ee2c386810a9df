package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokengrip/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, time.Second, cfg.Interval())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.LightTheme = true
	cfg.RefreshInterval = "250ms"
	cfg.HistoryLimit = 5
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.True(t, loaded.LightTheme)
	assert.Equal(t, 250*time.Millisecond, loaded.Interval())
	assert.Equal(t, 5, loaded.HistoryLimit)
	assert.Equal(t, path, svc.Path())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("light_theme = true\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.True(t, cfg.LightTheme)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.True(t, cfg.UISettings.ShowHelpFooter)
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "refresh_interval = \"soon\"\nhistory_limit = -3\nlog_file = \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultRefreshInterval.String(), cfg.RefreshInterval)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("light_theme = = true"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		loaded, ok := e.(eventbus.ConfigLoadedEvent)
		require.True(t, ok)
		assert.Equal(t, path, loaded.Path)
	case <-time.After(time.Second):
		t.Fatal("config loaded event was not published")
	}
}
