package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.ScrambleLength != 20 {
		t.Errorf("ScrambleLength = %d", cfg.ScrambleLength)
	}
	if cfg.SolverTimeout() != 30*time.Second {
		t.Errorf("SolverTimeout = %v", cfg.SolverTimeout())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubelab.yaml")
	data := []byte("listen: \":9999\"\nsolver_url: http://solver:5000/\nscramble_length: 25\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.SolverURL != "http://solver:5000" {
		t.Errorf("SolverURL = %q, trailing slash should be trimmed", cfg.SolverURL)
	}
	if cfg.ScrambleLength != 25 {
		t.Errorf("ScrambleLength = %d", cfg.ScrambleLength)
	}
	// Unspecified fields keep defaults.
	if cfg.PlaybackIntervalMS != 800 {
		t.Errorf("PlaybackIntervalMS = %d", cfg.PlaybackIntervalMS)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []string{
		"scramble_length: 50\n",
		"solver_url: not-a-url\n",
	}
	for _, data := range cases {
		path := filepath.Join(t.TempDir(), "cubelab.yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load accepted %q", data)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestClampScrambleLength(t *testing.T) {
	cfg, _ := Load("")
	cases := []struct{ in, want int }{
		{0, 20},
		{-3, 20},
		{5, 10},
		{15, 15},
		{100, 30},
	}
	for _, tc := range cases {
		if got := cfg.ClampScrambleLength(tc.in); got != tc.want {
			t.Errorf("ClampScrambleLength(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
