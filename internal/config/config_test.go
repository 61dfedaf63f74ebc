package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig:\n got %+v\n expected %+v", cfg, DefaultFlappyConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestGapRangeAndSpawnY(t *testing.T) {
	cfg := DefaultFlappyConfig()

	lo, hi := cfg.GapRange()
	if lo != 150 || hi != 450 {
		t.Errorf("GapRange() = [%d, %d], expected [150, 450]", lo, hi)
	}
	if cfg.SpawnY() != 350 {
		t.Errorf("SpawnY() = %d, expected 350 (height/2)", cfg.SpawnY())
	}

	cfg.Player.Y = 120
	if cfg.SpawnY() != 120 {
		t.Errorf("SpawnY() = %d, expected explicit 120", cfg.SpawnY())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FlappyConfig)
		wantErr string
	}{
		{"zero pipe speed", func(c *FlappyConfig) { c.Physics.PipeSpeed = 0 }, "physics.pipe_speed"},
		{"positive flap", func(c *FlappyConfig) { c.Physics.FlapImpulse = 4 }, "physics.flap_impulse"},
		{"no gravity", func(c *FlappyConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"empty gap range", func(c *FlappyConfig) { c.Obstacles.GapMinY = 500 }, "gap range"},
		{"threshold wider than screen", func(c *FlappyConfig) { c.Obstacles.SpawnThreshold = 600 }, "spawn_threshold"},
		{"bird below ground", func(c *FlappyConfig) { c.Player.Y = 900 }, "player.y"},
		{"zero gap", func(c *FlappyConfig) { c.Obstacles.GapHeight = 0 }, "obstacles.gap_height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error = %q, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "physics:\n  gravity: 0.8\nobstacles:\n  gap_height: 180\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() error: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %g, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.GapHeight != 180 {
		t.Errorf("GapHeight = %d, expected 180", cfg.Obstacles.GapHeight)
	}
	// Keys not present keep defaults
	if cfg.Physics.FlapImpulse != -10 {
		t.Errorf("FlapImpulse = %g, expected default -10", cfg.Physics.FlapImpulse)
	}
	if cfg.Screen.Width != 500 {
		t.Errorf("Screen.Width = %d, expected default 500", cfg.Screen.Width)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  pipe_speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(invalid); err == nil {
		t.Error("invalid values should be an error")
	}
}

func TestLoadFlappySearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() error: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := "physics:\n  pipe_speed: 4\n"
	if err := os.WriteFile(filepath.Join(work, "configs", "flappy.yaml"), []byte(local), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadFlappy("")
	if cfg.Physics.PipeSpeed != 4 {
		t.Errorf("PipeSpeed = %d, expected 4 from ./configs", cfg.Physics.PipeSpeed)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".flappy", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := "physics:\n  pipe_speed: 5\n"
	if err := os.WriteFile(filepath.Join(userDir, "flappy.yaml"), []byte(user), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadFlappy("")
	if cfg.Physics.PipeSpeed != 5 {
		t.Errorf("PipeSpeed = %d, expected 5 from ~/.flappy", cfg.Physics.PipeSpeed)
	}
}

func TestMarshalIncludesSections(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)
	for _, key := range []string{"screen:", "physics:", "flap_impulse: -10", "gap_bottom_margin: 250"} {
		if !strings.Contains(out, key) {
			t.Errorf("Marshal() output missing %q:\n%s", key, out)
		}
	}
}
