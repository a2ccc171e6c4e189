package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Cue names one sound effect.
type Cue int

const (
	CueRotateCW Cue = iota
	CueRotateCCW
	CueSelect
	CueSwap
	CueFail
	CueRemove
	CueBomb
	CueBlip
	cueCount
)

var cueNames = [cueCount]string{
	"rotate_cw", "rotate_ccw", "select", "swap", "fail", "remove", "bomb", "blip",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// cueGap is the minimum time between two plays of the same cue. Cascades
// can ask for the same cue several times in one frame.
var cueGap = [cueCount]time.Duration{
	CueRotateCW:  100 * time.Millisecond,
	CueRotateCCW: 100 * time.Millisecond,
	CueSelect:    40 * time.Millisecond,
	CueSwap:      40 * time.Millisecond,
	CueFail:      120 * time.Millisecond,
	CueRemove:    60 * time.Millisecond,
	CueBomb:      120 * time.Millisecond,
	CueBlip:      30 * time.Millisecond,
}

// Build returns a fresh streamer for the cue at gain vol.
func Build(c Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueRotateCW:
		s = beep.Seq(tone(660, 70*time.Millisecond, WaveSine), tone(440, 110*time.Millisecond, WaveSine))
	case CueRotateCCW:
		s = beep.Seq(tone(440, 70*time.Millisecond, WaveSine), tone(660, 110*time.Millisecond, WaveSine))
	case CueSelect:
		s = tone(880, 80*time.Millisecond, WaveSine)
	case CueSwap:
		s = newVolume(tone(523, 60*time.Millisecond, WaveSquare), 0.4)
	case CueFail:
		s = newVolume(tone(110, 160*time.Millisecond, WaveSaw), 0.7)
	case CueRemove:
		s = beep.Mix(
			newVolume(tone(1320, 120*time.Millisecond, WaveSine), 0.6),
			newVolume(tone(0, 120*time.Millisecond, WaveNoise), 0.25),
		)
	case CueBomb:
		s = beep.Mix(
			newVolume(tone(0, 320*time.Millisecond, WaveNoise), 0.6),
			newVolume(tone(70, 320*time.Millisecond, WaveSaw), 0.5),
		)
	case CueBlip:
		s = newVolume(tone(1760, 25*time.Millisecond, WaveSine), 0.3)
	default:
		s = beep.Silence(SampleRate.N(10 * time.Millisecond))
	}
	return newVolume(s, vol)
}

// musicNotes is the background arpeggio, one eighth note each.
var musicNotes = []float64{
	220.00, 261.63, 329.63, 261.63,
	196.00, 246.94, 293.66, 246.94,
	174.61, 220.00, 261.63, 220.00,
	196.00, 246.94, 293.66, 392.00,
}

const musicNote = 240 * time.Millisecond

// Music returns one pass of the background loop at gain vol.
func Music(vol float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(musicNotes))
	for _, f := range musicNotes {
		sine, err := generators.SineTone(SampleRate, f)
		if err != nil {
			return nil, fmt.Errorf("music note %.2f Hz: %w", f, err)
		}
		n := SampleRate.N(musicNote)
		notes = append(notes, NewEnvelope(beep.Take(n, sine), musicNote, 20*time.Millisecond, 120*time.Millisecond, SampleRate))
	}
	return newVolume(beep.Seq(notes...), vol*0.5), nil
}

// Cues maps the session's sound calls onto cues.
type Cues interface {
	Play(c Cue)
	StartMusic()
	StopMusic()
}

// Sound adapts a Cues player to the session's SoundSystem method set.
type Sound struct {
	Player Cues
}

func (s Sound) Rotate(clockwise bool) {
	if clockwise {
		s.Player.Play(CueRotateCW)
		return
	}
	s.Player.Play(CueRotateCCW)
}

func (s Sound) Select()     { s.Player.Play(CueSelect) }
func (s Sound) Swap()       { s.Player.Play(CueSwap) }
func (s Sound) Fail()       { s.Player.Play(CueFail) }
func (s Sound) Remove()     { s.Player.Play(CueRemove) }
func (s Sound) Bomb()       { s.Player.Play(CueBomb) }
func (s Sound) Blip()       { s.Player.Play(CueBlip) }
func (s Sound) StartMusic() { s.Player.StartMusic() }
func (s Sound) StopMusic()  { s.Player.StopMusic() }
