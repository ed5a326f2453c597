package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolveExactName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bg_room.png")

	asset, ok := Resolve(dir, "bg_room.png")
	if !ok {
		t.Fatal("expected resolution")
	}
	if asset.MIME != "image/png" {
		t.Errorf("MIME = %q, want image/png", asset.MIME)
	}
	if !strings.HasPrefix(asset.DataURI, "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %q", asset.DataURI[:40])
	}
}

func TestResolveAppendsDefaultExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bg_room.png")

	asset, ok := Resolve(dir, "bg_room")
	if !ok {
		t.Fatal("expected extension-less reference to resolve")
	}
	if asset.Name != "bg_room" {
		t.Errorf("Name = %q, want the reference name unchanged", asset.Name)
	}
}

func TestResolveFallsBackToStem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bg_room")

	if _, ok := Resolve(dir, "bg_room.png"); !ok {
		t.Fatal("expected stem fallback to resolve")
	}
}

func TestResolveMisses(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Resolve(dir, "absent.png"); ok {
		t.Error("missing file should not resolve")
	}
	if _, ok := Resolve(dir, ""); ok {
		t.Error("empty name should not resolve")
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, ok := Resolve(dir, "sub.png"); ok {
		t.Error("directory should not resolve")
	}
}

func TestMIMEForExt(t *testing.T) {
	cases := map[string]string{
		".jpg":  "image/jpeg",
		".JPEG": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
		".bmp":  "image/png",
		"":      "image/png",
	}
	for ext, want := range cases {
		if got := MIMEForExt(ext); got != want {
			t.Errorf("MIMEForExt(%q) = %q, want %q", ext, got, want)
		}
	}
}
