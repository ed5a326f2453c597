package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Game holds the flat presentation settings embedded in the artifact: title
// text, theme colors, and external link fields. Keys the tool does not know
// about are kept in Extra and passed through to presentation unchanged.
type Game struct {
	Title           string `toml:"adv_title"`
	Subtitle        string `toml:"adv_sub_title"`
	TitleBackground string `toml:"title_bg_image"`
	Creator         string `toml:"creator_name"`
	ThemeColor      string `toml:"theme_color"`
	SubColor        string `toml:"sub_color"`
	TextColor       string `toml:"text_color"`
	FontImportURL   string `toml:"text_font_importURL"`
	XAccountURL     string `toml:"x_account_url"`
	VRChatURL       string `toml:"vrchat_account_url"`
	FediverseURL    string `toml:"fediverse_account_url"`
	WebURL          string `toml:"web_url"`
	BoothURL        string `toml:"booth_url"`
	FaviconURL      string `toml:"favicon_url"`

	Extra map[string]string `toml:"-"`
}

// gameKeyOrder fixes the serialization order of the known keys so identical
// inputs produce byte-identical artifacts.
var gameKeyOrder = []string{
	"adv_title",
	"adv_sub_title",
	"title_bg_image",
	"creator_name",
	"theme_color",
	"sub_color",
	"text_color",
	"text_font_importURL",
	"x_account_url",
	"vrchat_account_url",
	"fediverse_account_url",
	"web_url",
	"booth_url",
	"favicon_url",
}

// DefaultGame returns the fixed default presentation settings.
func DefaultGame() Game {
	return Game{
		Title:      defaultGameTitle,
		ThemeColor: defaultThemeColor,
		SubColor:   defaultSubColor,
		TextColor:  defaultTextColor,
	}
}

func (g *Game) fields() map[string]*string {
	return map[string]*string{
		"adv_title":             &g.Title,
		"adv_sub_title":         &g.Subtitle,
		"title_bg_image":        &g.TitleBackground,
		"creator_name":          &g.Creator,
		"theme_color":           &g.ThemeColor,
		"sub_color":             &g.SubColor,
		"text_color":            &g.TextColor,
		"text_font_importURL":   &g.FontImportURL,
		"x_account_url":         &g.XAccountURL,
		"vrchat_account_url":    &g.VRChatURL,
		"fediverse_account_url": &g.FediverseURL,
		"web_url":               &g.WebURL,
		"booth_url":             &g.BoothURL,
		"favicon_url":           &g.FaviconURL,
	}
}

func (g *Game) applyDefaults() {
	defaults := DefaultGame()
	if strings.TrimSpace(g.Title) == "" {
		g.Title = defaults.Title
	}
	if strings.TrimSpace(g.ThemeColor) == "" {
		g.ThemeColor = defaults.ThemeColor
	}
	if strings.TrimSpace(g.SubColor) == "" {
		g.SubColor = defaults.SubColor
	}
	if strings.TrimSpace(g.TextColor) == "" {
		g.TextColor = defaults.TextColor
	}
}

// LoadGameOverrides looks for a config.yml (or config.yaml) in the input
// directory and layers it over base. Projects created before the TOML config
// existed keep their game settings there. The boolean reports whether a file
// was found; a parse failure returns base unchanged together with the error
// so callers can warn and continue with defaults.
func LoadGameOverrides(inputDir string, base Game) (Game, bool, error) {
	var path string
	for _, name := range []string{"config.yml", "config.yaml"} {
		candidate := filepath.Join(inputDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			path = candidate
			break
		}
	}
	if path == "" {
		return base, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, false, nil
		}
		return base, true, fmt.Errorf("read %s: %w", path, err)
	}

	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return base, true, fmt.Errorf("parse %s: %w", path, err)
	}

	merged := base
	known := merged.fields()
	for key, value := range values {
		text := scalarString(value)
		if ptr, ok := known[key]; ok {
			*ptr = text
			continue
		}
		if merged.Extra == nil {
			merged.Extra = make(map[string]string)
		}
		merged.Extra[key] = text
	}
	merged.applyDefaults()
	return merged, true, nil
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON emits the known keys in fixed order followed by extra keys in
// sorted order, keeping artifact output deterministic.
func (g Game) MarshalJSON() ([]byte, error) {
	known := g.fields()

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key, value string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	for _, key := range gameKeyOrder {
		if err := write(key, *known[key]); err != nil {
			return nil, err
		}
	}
	extraKeys := make([]string, 0, len(g.Extra))
	for key := range g.Extra {
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		if err := write(key, g.Extra[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
