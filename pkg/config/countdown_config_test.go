package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/countdown/internal/particle"
	"github.com/decker502/countdown/pkg/embedded"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error: %v", err)
	}

	if cfg.Particles.Target != 50 {
		t.Errorf("Particles.Target: got %d, want 50", cfg.Particles.Target)
	}
	if cfg.Particles.InjectCount != 5 {
		t.Errorf("Particles.InjectCount: got %d, want 5", cfg.Particles.InjectCount)
	}
	if cfg.Fireworks.Cap != 5 {
		t.Errorf("Fireworks.Cap: got %d, want 5", cfg.Fireworks.Cap)
	}
	if cfg.ThrottleInterval() != 50*time.Millisecond {
		t.Errorf("ThrottleInterval: got %v, want 50ms", cfg.ThrottleInterval())
	}
	if cfg.FlipDuration() != 300*time.Millisecond {
		t.Errorf("FlipDuration: got %v, want 300ms", cfg.FlipDuration())
	}
	if cfg.SpawnInterval() != time.Second {
		t.Errorf("SpawnInterval: got %v, want 1s", cfg.SpawnInterval())
	}
	if cfg.TickInterval() != time.Second {
		t.Errorf("TickInterval: got %v, want 1s", cfg.TickInterval())
	}
}

func TestDefaultFireworkOptionsMatch(t *testing.T) {
	got := DefaultConfig().FireworkOptions()
	want := particle.DefaultFireworkOptions()
	if got != want {
		t.Errorf("FireworkOptions() = %+v, want %+v", got, want)
	}
}

// data/countdown.yaml 必须与 DefaultConfig 保持一致
func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadCountdownConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("LoadCountdownConfig() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("shipped config differs from defaults:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadCountdownConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *CountdownConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
target: "2027-01-01T00:00:00"
fireworks:
  cap: 8
`,
			validate: func(t *testing.T, cfg *CountdownConfig) {
				if cfg.Target != "2027-01-01T00:00:00" {
					t.Errorf("Target: got %q", cfg.Target)
				}
				if cfg.Fireworks.Cap != 8 {
					t.Errorf("Fireworks.Cap: got %d, want 8", cfg.Fireworks.Cap)
				}
				// 未指定的字段保留默认值
				if cfg.Fireworks.Sparks != 30 {
					t.Errorf("Fireworks.Sparks: got %d, want 30", cfg.Fireworks.Sparks)
				}
				if cfg.Particles.Target != 50 {
					t.Errorf("Particles.Target: got %d, want 50", cfg.Particles.Target)
				}
			},
		},
		{
			name:        "invalid target",
			yamlContent: `target: "next tuesday"`,
			wantErr:     true,
			errContains: "invalid target",
		},
		{
			name: "drag out of range",
			yamlContent: `
fireworks:
  drag: 1.5
`,
			wantErr:     true,
			errContains: "fireworks.drag",
		},
		{
			name: "zero firework cap",
			yamlContent: `
fireworks:
  cap: 0
`,
			wantErr:     true,
			errContains: "fireworks.cap",
		},
		{
			name: "inverted speed range",
			yamlContent: `
fireworks:
  speedMin: 9
  speedMax: 3
`,
			wantErr:     true,
			errContains: "speed range",
		},
		{
			name: "zero throttle",
			yamlContent: `
particles:
  throttleMs: 0
`,
			wantErr:     true,
			errContains: "particles.throttleMs",
		},
		{
			name: "wrong label count",
			yamlContent: `
display:
  labels: ["D", "H"]
`,
			wantErr:     true,
			errContains: "display.labels",
		},
		{
			name:        "malformed yaml",
			yamlContent: "particles: [oops",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "countdown.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadCountdownConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadCountdownConfigMissingFile(t *testing.T) {
	_, err := LoadCountdownConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read countdown config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadEmbeddedCountdownConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: &fstest.MapFile{Data: []byte("target: \"2030-02-03\"\n")},
	})

	cfg, err := LoadEmbeddedCountdownConfig(DefaultConfigPath)
	if err != nil {
		t.Fatalf("LoadEmbeddedCountdownConfig() error: %v", err)
	}
	target, err := cfg.TargetTime(time.UTC)
	if err != nil {
		t.Fatalf("TargetTime() error: %v", err)
	}
	if !target.Equal(time.Date(2030, 2, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("TargetTime() = %v", target)
	}

	if _, err := LoadEmbeddedCountdownConfig("data/missing.yaml"); err == nil {
		t.Error("expected error for missing embedded file")
	}
}

func TestTargetTime(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)

	tests := []struct {
		name   string
		target string
		want   time.Time
	}{
		{"local datetime", "2026-01-01T00:00:00", time.Date(2026, 1, 1, 0, 0, 0, 0, shanghai)},
		{"space separated", "2026-01-01 12:30:00", time.Date(2026, 1, 1, 12, 30, 0, 0, shanghai)},
		{"date only", "2026-01-01", time.Date(2026, 1, 1, 0, 0, 0, 0, shanghai)},
		{"rfc3339 keeps zone", "2026-01-01T00:00:00Z", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Target = tt.target
			got, err := cfg.TargetTime(shanghai)
			if err != nil {
				t.Fatalf("TargetTime() error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TargetTime() = %v, want %v", got, tt.want)
			}
		})
	}
}
