package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var ark ArkanoidConfig
	if err := yaml.Unmarshal(GetDefaultYAML("arkanoid"), &ark); err != nil {
		t.Fatalf("embedded arkanoid.yaml: %v", err)
	}
	if ark != DefaultArkanoidConfig() {
		t.Errorf("embedded arkanoid defaults differ:\n got %+v\nwant %+v", ark, DefaultArkanoidConfig())
	}

	var pong PongConfig
	if err := yaml.Unmarshal(GetDefaultYAML("pong"), &pong); err != nil {
		t.Fatalf("embedded pong.yaml: %v", err)
	}
	if pong != DefaultPongConfig() {
		t.Errorf("embedded pong defaults differ:\n got %+v\nwant %+v", pong, DefaultPongConfig())
	}

	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game should have no embedded YAML")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultArkanoidConfig().Validate(); err != nil {
		t.Errorf("arkanoid defaults invalid: %v", err)
	}
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("pong defaults invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArkanoidConfig)
	}{
		{"zero fps", func(c *ArkanoidConfig) { c.FPS = 0 }},
		{"negative ball speed", func(c *ArkanoidConfig) { c.Physics.BallSpeed = -1 }},
		{"zero radius", func(c *ArkanoidConfig) { c.Ball.Radius = 0 }},
		{"no lives", func(c *ArkanoidConfig) { c.Gameplay.Lives = 0 }},
		{"canvas smaller than field", func(c *ArkanoidConfig) { c.Canvas.Width = 100 }},
		{"paddle wider than field", func(c *ArkanoidConfig) { c.Paddle.Width = 400 }},
		{"no block rows", func(c *ArkanoidConfig) { c.Blocks.Depth = 0 }},
		{"blocks too wide", func(c *ArkanoidConfig) { c.Blocks.Width = 360 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v should wrap ErrInvalid", err)
			}
		})
	}
}

func TestPongValidateSpin(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Spin.MinAngle = 90
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("spin clamp below 180 should be rejected, got %v", err)
	}
}

func TestLevelScaling(t *testing.T) {
	cfg := DefaultArkanoidConfig()

	if got := cfg.LevelScale(0); got != 1 {
		t.Errorf("LevelScale(0) = %v, expected 1", got)
	}
	if got, want := cfg.BallSpeed(1), 1.33*250; !approx(got, want) {
		t.Errorf("BallSpeed(1) = %v, expected %v", got, want)
	}
	if got, want := cfg.PaddleSpeed(2), (1+2*0.33)*300; !approx(got, want) {
		t.Errorf("PaddleSpeed(2) = %v, expected %v", got, want)
	}
	if got := cfg.TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds = %v, expected 0.02", got)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("fps: 60\nphysics:\n  ball_speed: 400\nblocks:\n  depth: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid: %v", err)
	}
	if cfg.FPS != 60 || cfg.Physics.BallSpeed != 400 || cfg.Blocks.Depth != 6 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.Physics.PaddleSpeed != 300 || cfg.Blocks.Width != 25 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(path); err == nil {
		t.Error("malformed config should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("fps: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero fps should be rejected, got %v", err)
	}
}

func TestLoadSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ConfigDirName, "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "pong.yaml"), []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("user config not picked up, lives = %d", cfg.Gameplay.Lives)
	}
	if cfg.Ball.Radius != 8 {
		t.Errorf("ball radius = %v, expected default 8", cfg.Ball.Radius)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"insane", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultArkanoidConfig()
	easy.ApplyPreset(DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Paddle.Width != 75 || easy.Physics.BallSpeed != 200 {
		t.Errorf("easy preset = %+v", easy.Common)
	}

	hard := DefaultArkanoidConfig()
	hard.ApplyPreset(DifficultyHard)
	if hard.Gameplay.Lives != 2 || hard.Paddle.Width != 48 || hard.Physics.BallSpeed != 300 {
		t.Errorf("hard preset = %+v", hard.Common)
	}

	normal := DefaultArkanoidConfig()
	normal.ApplyPreset(DifficultyNormal)
	if normal != DefaultArkanoidConfig() {
		t.Error("normal preset should not change anything")
	}
}

func TestCueNames(t *testing.T) {
	got := DefaultArkanoidConfig().Cues.Names()
	want := []string{"pong", "beep", "looselife", "gameover"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}

	if n := DefaultPongConfig().Cues.Names(); len(n) != 2 {
		t.Errorf("pong cue names = %v, expected bang and explosion", n)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ARKANOID_TEST_ENV", "9000")
	if got := GetEnv("ARKANOID_TEST_ENV", "1337"); got != "9000" {
		t.Errorf("GetEnv = %q, expected 9000", got)
	}
	if got := GetEnv("ARKANOID_TEST_UNSET", "1337"); got != "1337" {
		t.Errorf("GetEnv fallback = %q, expected 1337", got)
	}
}
