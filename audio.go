package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// shotSound plays the gunshot on the desktop front-end.
type shotSound struct {
	ctx     *audio.Context
	pcm     []byte
	players []*audio.Player
}

// newShotSound prepares the shot from path, or synthesizes one when path
// is empty.
func newShotSound(path string) (*shotSound, error) {
	pcm := synthShotPCM(audioSampleRate, shotDuration)
	if path != "" {
		loaded, err := loadShotPCM(audioSampleRate, path)
		if err != nil {
			return nil, err
		}
		pcm = loaded
	}
	return &shotSound{ctx: audio.NewContext(audioSampleRate), pcm: pcm}, nil
}

// Play starts one shot. Overlapping shots each get a player; finished ones
// are dropped.
func (s *shotSound) Play() {
	if s == nil {
		return
	}
	live := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			_ = p.Close()
		}
	}
	p := s.ctx.NewPlayerFromBytes(s.pcm)
	p.Play()
	s.players = append(live, p)
}

// loadShotPCM decodes the WAV at path into 16-bit stereo PCM at sampleRate.
func loadShotPCM(sampleRate int, path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	if len(decoded) < 4 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	return decoded, nil
}

// synthShotPCM builds a noise burst over a falling tone with an exponential
// decay, as 16-bit little-endian stereo frames.
func synthShotPCM(sampleRate int, d time.Duration) []byte {
	frames := int(float64(sampleRate) * d.Seconds())
	pcm := make([]byte, frames*4)
	rng := rand.New(rand.NewSource(1))
	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-t * 30)
		freq := shotToneHz * (1 - 0.5*float64(i)/float64(frames))
		phase += freq / float64(sampleRate)
		v := env * (0.6*(rng.Float64()*2-1) + 0.4*math.Sin(2*math.Pi*phase))
		s := int16(math.Max(-1, math.Min(1, v)) * pcm16MaxValue)
		offset := i * 4
		pcm[offset] = byte(s)
		pcm[offset+1] = byte(s >> 8)
		pcm[offset+2] = pcm[offset]
		pcm[offset+3] = pcm[offset+1]
	}
	return pcm
}
