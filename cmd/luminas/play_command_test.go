package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"luminas/internal/testsupport"
)

func TestPlayCommandQuits(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteScriptCSV(t, filepath.Join(env.cfg.Paths.InputDir, "scenario.csv"), testsupport.SampleRows())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader("q\n"))
	cmd.SetArgs([]string{"--config", env.configPath, "play"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("play: %v", err)
	}
	out := stdout.String()
	requireContains(t, out, "Commands:")
	requireContains(t, out, "第一章 新しい朝")
}

func TestPlayCommandMissingScript(t *testing.T) {
	env := setupCLITestEnv(t)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--config", env.configPath, "play", "missing.csv"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing script")
	}
}
