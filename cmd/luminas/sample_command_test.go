package main

import (
	"path/filepath"
	"testing"

	"luminas/internal/scenario"
)

func TestSampleCommandWritesLoadableScript(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sample"}, env.configPath)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	requireContains(t, out, "Wrote sample scenario")

	script, err := scenario.Load(filepath.Join(env.cfg.Paths.InputDir, "sample_scenario.csv"))
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if script.Len() != 11 {
		t.Fatalf("expected 11 rows, got %d", script.Len())
	}

	if _, _, err := runCLI(t, []string{"sample"}, env.configPath); err == nil {
		t.Fatal("expected error when sample already exists")
	}
	if _, _, err := runCLI(t, []string{"sample", "--overwrite"}, env.configPath); err != nil {
		t.Fatalf("sample --overwrite: %v", err)
	}
}
