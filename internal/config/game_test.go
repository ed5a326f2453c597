package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadGameOverrides(t *testing.T) {
	dir := t.TempDir()
	yml := `adv_title: 星降る夜に
creator_name: たくみ
theme_color: "#123456"
custom_key: custom value
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	game, found, err := LoadGameOverrides(dir, DefaultGame())
	if err != nil {
		t.Fatalf("LoadGameOverrides: %v", err)
	}
	if !found {
		t.Fatal("expected config.yml to be found")
	}
	if game.Title != "星降る夜に" || game.Creator != "たくみ" {
		t.Errorf("overrides not applied: %+v", game)
	}
	if game.ThemeColor != "#123456" {
		t.Errorf("ThemeColor = %q", game.ThemeColor)
	}
	if game.SubColor != defaultSubColor {
		t.Errorf("untouched field lost its default: %q", game.SubColor)
	}
	if game.Extra["custom_key"] != "custom value" {
		t.Errorf("unknown key should pass through, got %v", game.Extra)
	}
}

func TestLoadGameOverridesAbsent(t *testing.T) {
	game, found, err := LoadGameOverrides(t.TempDir(), DefaultGame())
	if err != nil {
		t.Fatalf("LoadGameOverrides: %v", err)
	}
	if found {
		t.Fatal("nothing to find in an empty directory")
	}
	if game.Title != defaultGameTitle {
		t.Errorf("base should return unchanged, got %+v", game)
	}
}

func TestLoadGameOverridesParseFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("adv_title: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	base := DefaultGame()
	game, found, err := LoadGameOverrides(dir, base)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !found {
		t.Error("file was present, found should be true")
	}
	if game.Title != base.Title {
		t.Errorf("base should come back unchanged on error, got %+v", game)
	}
}

func TestGameMarshalJSONDeterministic(t *testing.T) {
	game := DefaultGame()
	game.Extra = map[string]string{"zz_last": "1", "aa_first": "2"}

	first, err := game.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := game.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON: %v", err)
		}
		if string(next) != string(first) {
			t.Fatal("serialization must be byte-stable across runs")
		}
	}

	text := string(first)
	if !strings.HasPrefix(text, `{"adv_title":`) {
		t.Errorf("adv_title must serialize first: %s", text)
	}
	if strings.Index(text, `"aa_first"`) > strings.Index(text, `"zz_last"`) {
		t.Error("extra keys must serialize in sorted order")
	}
	if strings.Index(text, `"favicon_url"`) > strings.Index(text, `"aa_first"`) {
		t.Error("known keys must precede extra keys")
	}
}
