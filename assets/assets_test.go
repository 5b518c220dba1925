package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeWithFallbacks(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "textures", "heart.png"), 8, 4)

	d, err := decode(context.Background(), Manifest{
		Dir:      dir,
		Textures: []string{"textures/heart.png", "textures/cat.png"},
		Sounds:   map[string]Sound{"shot": {Path: "shot.wav", Freq: 950, Dur: 0.1}},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if img := d.images["textures/heart.png"]; img == nil || img.Bounds().Dx() != 8 {
		t.Errorf("Expected decoded 8px wide heart, got %v", img)
	}
	if diff := cmp.Diff([]string{"shot", "textures/cat.png"}, d.missing); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}
	if got := len(d.pcm["shot"]); got != 4410*4 {
		t.Errorf("Expected beep fallback of 4410 stereo frames, got %d bytes", got)
	}
}

func TestDecodeCorruptTextureFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := decode(context.Background(), Manifest{Dir: dir, Textures: []string{"bad.png"}}); err == nil {
		t.Error("Expected decode error")
	}
}

func TestDecodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := decode(ctx, Manifest{Dir: t.TempDir(), Textures: []string{"a.png"}}); err == nil {
		t.Error("Expected cancellation error")
	}
}

func TestUnsupportedSound(t *testing.T) {
	if _, err := decodePCM("music.flac", nil); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestBeepIsStereo(t *testing.T) {
	pcm := beepPCM(440, 0.01)
	if len(pcm)%4 != 0 {
		t.Fatalf("Expected whole stereo frames, got %d bytes", len(pcm))
	}
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("Expected identical channels at frame %d", i/4)
		}
	}
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	if lib.Texture("x") != nil {
		t.Error("Expected nil texture")
	}
	lib.Play("x")
}

func TestDefaultFont(t *testing.T) {
	src, err := DefaultFont()
	if err != nil || src == nil {
		t.Fatalf("Expected bundled font, got %v", err)
	}
}
