// Package audio plays the alert sound through the beep speaker.
package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the rate the speaker is initialised with.
const SampleRate = beep.SampleRate(44100)

// ErrAudioUnavailable is returned by Play when the speaker could not be initialised.
var ErrAudioUnavailable = errors.New("audio unavailable")

// Player plays a preloaded alert sound.
type Player struct {
	mu     sync.Mutex
	buffer *beep.Buffer
	volume float64
	ready  bool
}

// NewPlayer initialises the speaker and loads soundFile, or the built-in chime
// when soundFile is empty or cannot be decoded. Audio problems are logged and
// leave a Player whose Play returns ErrAudioUnavailable.
func NewPlayer(soundFile string, volume float64) *Player {
	p := &Player{volume: volume}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return p
	}

	var err error
	if soundFile != "" {
		p.buffer, err = Decode(soundFile)
		if err != nil {
			log.Printf("Failed to load alert sound %s, using chime: %v", soundFile, err)
		} else {
			log.Printf("Loaded alert sound %s", soundFile)
		}
	}
	if p.buffer == nil {
		if p.buffer, err = Chime(); err != nil {
			log.Printf("Audio disabled: Failed to build chime: %v", err)
			return p
		}
	}

	p.ready = true
	return p
}

// Play starts the alert sound and returns without waiting for it to finish.
func (p *Player) Play() error {
	if !p.ready {
		return ErrAudioUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   false,
	})
	return nil
}

// Decode loads an .ogg, .wav or .mp3 file into a buffer at SampleRate.
func Decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode audio %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, streamer)
		format.SampleRate = SampleRate
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(s)
	return buffer, nil
}

// Chime synthesises the default alert: two short sine tones.
func Chime() (*beep.Buffer, error) {
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	buffer := beep.NewBuffer(format)

	for _, freq := range []float64{880, 660} {
		tone, err := generators.SineTone(SampleRate, freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %vHz: %w", freq, err)
		}
		buffer.Append(beep.Take(SampleRate.N(ChimeToneDuration), &effects.Gain{Streamer: tone, Gain: -0.7}))
	}
	return buffer, nil
}

// ChimeToneDuration is the length of each tone of the chime.
const ChimeToneDuration = 250 * time.Millisecond
