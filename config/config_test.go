package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dispatch.QueueSize != DefaultQueueSize {
		t.Errorf("QueueSize = %d, want %d", cfg.Dispatch.QueueSize, DefaultQueueSize)
	}
	if cfg.Dispatch.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", cfg.Dispatch.Workers, DefaultWorkers)
	}
	if cfg.Dispatch.SyncDelivery {
		t.Error("SyncDelivery should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dispatch.QueueSize != DefaultQueueSize {
		t.Errorf("QueueSize = %d, want default", cfg.Dispatch.QueueSize)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[dispatch]
workers = 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dispatch.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Dispatch.Workers)
	}
	if cfg.Dispatch.QueueSize != DefaultQueueSize {
		t.Errorf("QueueSize = %d, want default (unnamed keys keep defaults)", cfg.Dispatch.QueueSize)
	}
}

func TestLoad_FullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[dispatch]
queue_size = 256
workers = 2
sync_delivery = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dispatch.QueueSize != 256 || cfg.Dispatch.Workers != 2 || !cfg.Dispatch.SyncDelivery {
		t.Errorf("Load() = %+v", cfg.Dispatch)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[dispatch]
workers = -1
`)

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, want ErrInvalid", err)
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `[dispatch`)

	if _, err := Load(path); err == nil {
		t.Error("expected malformed TOML to fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Dispatch: DispatchConfig{QueueSize: 1, Workers: 1}}, false},
		{"zero queue", Config{Dispatch: DispatchConfig{QueueSize: 0, Workers: 1}}, true},
		{"zero workers", Config{Dispatch: DispatchConfig{QueueSize: 1, Workers: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want wrapped ErrInvalid", err)
			}
		})
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[dispatch]\nworkers = 2\n")

	changed := make(chan *Config, 1)
	w := NewWatcher(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	}, WithDebounce(50*time.Millisecond))

	if err := w.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer w.Stop()

	writeFile(t, path, "[dispatch]\nworkers = 6\n")

	select {
	case cfg := <-changed:
		if cfg.Dispatch.Workers != 6 {
			t.Errorf("reloaded Workers = %d, want 6", cfg.Dispatch.Workers)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the change")
	}
}

func TestWatcher_InvalidReloadReportsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[dispatch]\nworkers = 2\n")

	errs := make(chan error, 1)
	w := NewWatcher(path, func(cfg *Config) {
		t.Error("onChange fired for an invalid config")
	}, WithDebounce(50*time.Millisecond), WithErrorHandler(func(err error) {
		select {
		case errs <- err:
		default:
		}
	}))

	if err := w.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer w.Stop()

	writeFile(t, path, "[dispatch]\nworkers = -1\n")

	select {
	case err := <-errs:
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("error handler got %v, want ErrInvalid", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never reported the reload error")
	}
}

func TestWatcher_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	w := NewWatcher(path, func(cfg *Config) {})

	if err := w.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := w.Start(); !errors.Is(err, ErrWatcherRunning) {
		t.Errorf("second Start() = %v, want ErrWatcherRunning", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := w.Stop(); !errors.Is(err, ErrWatcherStopped) {
		t.Errorf("second Stop() = %v, want ErrWatcherStopped", err)
	}
}
