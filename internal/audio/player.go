// Package audio plays the greeting's music track. Playback is best-effort:
// a missing or undecodable file is reported once at open time and the rest
// of the page runs silent.
package audio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Player loops a single decoded track through the speaker, starting paused.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
}

// Open decodes the track at path by extension (.mp3, .wav or .flac),
// initializes the speaker and registers a paused, looping stream.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.New("unsupported audio type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, err
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true}
	speaker.Play(ctrl)

	return &Player{
		file:     f,
		streamer: streamer,
		ctrl:     ctrl,
	}, nil
}

// Playing reports whether the track is currently audible.
func (p *Player) Playing() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Toggle flips playback and returns the new playing state.
func (p *Player) Toggle() bool {
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	playing := !p.ctrl.Paused
	speaker.Unlock()
	return playing
}

// Play unpauses the track.
func (p *Player) Play() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

// Close stops playback and releases the decoder and file handle.
func (p *Player) Close() error {
	speaker.Lock()
	p.ctrl.Paused = true
	p.ctrl.Streamer = nil
	speaker.Unlock()
	if err := p.streamer.Close(); err != nil {
		_ = p.file.Close()
		return err
	}
	return p.file.Close()
}
