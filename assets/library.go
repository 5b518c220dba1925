// Package assets loads textures, fonts and sounds. Missing files fall back
// to nil textures (drawn as colored boxes) and synthesized beeps.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
)

// Manifest lists what to load, relative to Dir
type Manifest struct {
	Dir      string
	Textures []string
	Sounds   map[string]Sound
}

// Library holds loaded assets by name
type Library struct {
	Font     *text.GoTextFaceSource
	textures map[string]*ebiten.Image
	sounds   map[string]*audio.Player
}

// DefaultFont is the Go Regular face bundled with x/image
func DefaultFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("assets: default font: %w", err)
	}
	return src, nil
}

// decoded is the platform independent result of reading a manifest
type decoded struct {
	images  map[string]image.Image
	pcm     map[string][]byte
	missing []string
}

// decode reads and decodes every file concurrently
func decode(ctx context.Context, m Manifest) (*decoded, error) {
	out := &decoded{
		images: make(map[string]image.Image),
		pcm:    make(map[string][]byte),
	}
	var mu sync.Mutex
	miss := func(name string) {
		mu.Lock()
		out.missing = append(out.missing, name)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, name := range m.Textures {
		g.Go(func() error {
			data, err := readFile(ctx, filepath.Join(m.Dir, name))
			if errors.Is(err, fs.ErrNotExist) {
				miss(name)
				return nil
			}
			if err != nil {
				return err
			}
			img, _, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("assets: decode %s: %w", name, err)
			}
			mu.Lock()
			out.images[name] = img
			mu.Unlock()
			return nil
		})
	}
	for name, s := range m.Sounds {
		g.Go(func() error {
			data, err := readFile(ctx, filepath.Join(m.Dir, s.Path))
			if errors.Is(err, fs.ErrNotExist) {
				miss(name)
				mu.Lock()
				out.pcm[name] = beepPCM(s.Freq, s.Dur)
				mu.Unlock()
				return nil
			}
			if err != nil {
				return err
			}
			pcm, err := decodePCM(s.Path, data)
			if err != nil {
				return err
			}
			mu.Lock()
			out.pcm[name] = pcm
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(out.missing)
	return out, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Load decodes the manifest and uploads the results. The audio context is
// created by the caller since ebiten allows only one per process.
func Load(ctx context.Context, m Manifest, audioCtx *audio.Context) (*Library, error) {
	d, err := decode(ctx, m)
	if err != nil {
		return nil, err
	}
	for _, name := range d.missing {
		log.Warn().Str("asset", name).Str("dir", m.Dir).Msg("asset not found; using fallback")
	}

	font, err := DefaultFont()
	if err != nil {
		return nil, err
	}
	lib := &Library{
		Font:     font,
		textures: make(map[string]*ebiten.Image, len(d.images)),
		sounds:   make(map[string]*audio.Player, len(d.pcm)),
	}
	for name, img := range d.images {
		lib.textures[name] = ebiten.NewImageFromImage(img)
	}
	if audioCtx != nil {
		for name, pcm := range d.pcm {
			lib.sounds[name] = audioCtx.NewPlayerFromBytes(pcm)
		}
	}
	log.Info().Int("textures", len(lib.textures)).Int("sounds", len(lib.sounds)).Msg("assets loaded")
	return lib, nil
}

// Texture returns the named texture or nil when it was not found
func (l *Library) Texture(name string) *ebiten.Image {
	if l == nil {
		return nil
	}
	return l.textures[name]
}

// Play plays the named sound if it was loaded
func (l *Library) Play(name string) {
	if l == nil {
		return
	}
	Play(l.sounds[name])
}
