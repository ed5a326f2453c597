package bundle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"luminas/internal/assets"
	"luminas/internal/config"
	"luminas/internal/testsupport"
)

func sampleBundle(t *testing.T) *Bundle {
	t.Helper()
	dir := t.TempDir()
	testsupport.WriteAsset(t, dir, "bg_1_morning_bed.png", testsupport.TinyPNG)
	testsupport.WriteAsset(t, dir, "bg_myroom_1.png", testsupport.TinyPNG)

	collector := assets.NewCollector()
	collector.Add(dir, "bg_1_morning_bed.png")
	collector.Add(dir, "bg_myroom_1.png")

	game := config.DefaultGame()
	game.Title = "試験物語"
	game.Subtitle = "第一幕"
	game.Creator = "たくみ"

	return Assemble(testsupport.SampleScript(), collector.Bundle(), game)
}

func TestRenderProducesCompleteDocument(t *testing.T) {
	b := sampleBundle(t)

	var buf bytes.Buffer
	if err := b.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"試験物語",
		"第一幕",
		"たくみ",
		`"scene_id": "1-T"`,
		`"scene_id": "1-E"`,
		"data:image/png;base64,",
		"SCENARIO_DATA",
		"ASSETS",
		"CONFIG",
		"#667EEA",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(html, "{{") {
		t.Error("unexpanded template markers left in output")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	b := sampleBundle(t)

	var first bytes.Buffer
	if err := b.Render(&first); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 5; i++ {
		var next bytes.Buffer
		if err := b.Render(&next); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !bytes.Equal(first.Bytes(), next.Bytes()) {
			t.Fatal("identical input must produce byte-identical output")
		}
	}
}

func TestRenderAssetOrder(t *testing.T) {
	b := sampleBundle(t)

	var buf bytes.Buffer
	if err := b.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	first := strings.Index(html, `"bg_1_morning_bed.png"`)
	second := strings.Index(html, `"bg_myroom_1.png"`)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("assets must serialize in first-reference order (%d, %d)", first, second)
	}
}

func TestRenderEmptyAssets(t *testing.T) {
	b := Assemble(testsupport.SampleScript(), assets.NewCollector().Bundle(), config.DefaultGame())

	var buf bytes.Buffer
	if err := b.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "const ASSETS = {}") {
		t.Error("empty bundle should serialize as an empty object")
	}
}

func TestWriteArtifact(t *testing.T) {
	b := sampleBundle(t)
	path := filepath.Join(t.TempDir(), "out", "game.html")

	if err := b.WriteArtifact(path); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(data) == 0 || !bytes.Contains(data, []byte("<!DOCTYPE html>")) {
		t.Fatal("artifact incomplete")
	}
}

func TestWriteArtifactFailure(t *testing.T) {
	b := sampleBundle(t)
	dir := t.TempDir()
	// A directory at the target path makes creation fail.
	target := filepath.Join(dir, "game.html")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	err := b.WriteArtifact(target)
	if !errors.Is(err, ErrArtifactWrite) {
		t.Fatalf("expected ErrArtifactWrite, got %v", err)
	}
}
