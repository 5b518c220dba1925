package assets

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Sound names a file and the beep played when it cannot be loaded
type Sound struct {
	Path string
	Freq float64 // fallback beep pitch in Hz
	Dur  float64 // fallback beep length in seconds
}

// decodePCM decodes a wav, ogg or mp3 file into 16-bit stereo PCM at
// SampleRate
func decodePCM(path string, data []byte) ([]byte, error) {
	src := bytes.NewReader(data)
	var (
		stream io.Reader
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, src)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, src)
	default:
		return nil, fmt.Errorf("assets: unsupported sound format %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return pcm, nil
}

// beepPCM synthesizes a short sine beep as 16-bit stereo PCM
func beepPCM(freq, durSec float64) []byte {
	n := int(float64(SampleRate) * durSec)
	pcm := make([]byte, n*4)
	amp := 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(SampleRate))
		s := int16(v * amp * 32767)
		// same sample on both channels
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

// Play restarts p from the beginning; nil players are ignored
func Play(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}
