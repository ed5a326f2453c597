package assets

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
)

// DefaultImageExt is appended to extension-less references before lookup.
const DefaultImageExt = ".png"

// Asset is one resolved media payload ready for embedding.
type Asset struct {
	Name    string
	Path    string
	MIME    string
	DataURI string
}

var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MIMEForExt maps a file extension to its media type, defaulting to PNG for
// anything unrecognized.
func MIMEForExt(ext string) string {
	if mime, ok := mimeByExt[strings.ToLower(ext)]; ok {
		return mime
	}
	return "image/png"
}

// Resolve locates a referenced file under dir and returns its embeddable
// encoding. The lookup order is: exact name, the name with the default image
// extension appended when it has none, then the bare stem. A false return
// means unresolved; it is not an error and resolution has no side effects.
func Resolve(dir, name string) (Asset, bool) {
	path, ok := locate(dir, name)
	if !ok {
		return Asset{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, false
	}
	mime := MIMEForExt(filepath.Ext(path))
	return Asset{
		Name:    name,
		Path:    path,
		MIME:    mime,
		DataURI: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, true
}

func locate(dir, name string) (string, bool) {
	if name == "" || dir == "" {
		return "", false
	}
	candidate := name
	if filepath.Ext(candidate) == "" {
		candidate += DefaultImageExt
	}
	if path := filepath.Join(dir, candidate); fileExists(path) {
		return path, true
	}
	stem := strings.TrimSuffix(candidate, filepath.Ext(candidate))
	if path := filepath.Join(dir, stem); fileExists(path) {
		return path, true
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
