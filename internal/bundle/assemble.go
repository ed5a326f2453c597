package bundle

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"luminas/internal/assets"
	"luminas/internal/config"
	"luminas/internal/scenario"
)

// ErrArtifactWrite marks a fatal failure to write the compiled artifact.
var ErrArtifactWrite = errors.New("artifact write error")

//go:embed templates/artifact.html.tmpl templates/style.css.tmpl templates/player.js.tmpl
var templateFS embed.FS

var (
	artifactTmpl = template.Must(template.ParseFS(templateFS, "templates/artifact.html.tmpl"))
	styleTmpl    = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/style.css.tmpl"))
	playerTmpl   = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/player.js.tmpl"))
)

// Bundle is the compiled, self-contained form of one scenario.
type Bundle struct {
	Script *scenario.Script
	Assets *assets.Bundle
	Game   config.Game
}

// Assemble combines the ingested script, the resolved asset bundle, and the
// presentation configuration into a bundle ready for rendering.
func Assemble(script *scenario.Script, assetBundle *assets.Bundle, game config.Game) *Bundle {
	return &Bundle{Script: script, Assets: assetBundle, Game: game}
}

type styleData struct {
	ThemeColor string
	SubColor   string
	TextColor  string
}

type playerData struct {
	ScenarioJSON template.JS
	AssetsJSON   template.JS
	ConfigJSON   template.JS
}

type artifactData struct {
	Title         string
	Subtitle      string
	Creator       string
	FontImportURL string
	FaviconURL    string
	Style         template.CSS
	Script        template.JS
}

// Render writes the artifact document to w.
func (b *Bundle) Render(w io.Writer) error {
	scenarioJSON, err := json.MarshalIndent(b.Script.Rows(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	assetsJSON, err := encodeAssets(b.Assets)
	if err != nil {
		return fmt.Errorf("encode assets: %w", err)
	}
	configJSON, err := json.Marshal(b.Game)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	var style bytes.Buffer
	if err := styleTmpl.Execute(&style, styleData{
		ThemeColor: b.Game.ThemeColor,
		SubColor:   b.Game.SubColor,
		TextColor:  b.Game.TextColor,
	}); err != nil {
		return fmt.Errorf("render style: %w", err)
	}

	var player bytes.Buffer
	if err := playerTmpl.Execute(&player, playerData{
		ScenarioJSON: template.JS(scenarioJSON),
		AssetsJSON:   template.JS(assetsJSON),
		ConfigJSON:   template.JS(configJSON),
	}); err != nil {
		return fmt.Errorf("render player: %w", err)
	}

	return artifactTmpl.Execute(w, artifactData{
		Title:         b.Game.Title,
		Subtitle:      b.Game.Subtitle,
		Creator:       b.Game.Creator,
		FontImportURL: b.Game.FontImportURL,
		FaviconURL:    b.Game.FaviconURL,
		Style:         template.CSS(style.String()),
		Script:        template.JS(player.String()),
	})
}

// WriteArtifact renders the bundle to path, creating the destination
// directory if needed.
func (b *Bundle) WriteArtifact(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create output directory: %v", ErrArtifactWrite, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrArtifactWrite, path, err)
	}
	defer file.Close()

	if err := b.Render(file); err != nil {
		return fmt.Errorf("%w: render %s: %v", ErrArtifactWrite, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrArtifactWrite, path, err)
	}
	return nil
}

// encodeAssets serializes the asset map as a JSON object whose keys appear
// in first-reference order. encoding/json would randomize map key order, so
// the object is assembled by hand.
func encodeAssets(bundle *assets.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range bundle.Names() {
		asset, _ := bundle.Get(name)
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(asset.DataURI)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
