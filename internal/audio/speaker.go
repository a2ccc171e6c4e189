package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Hexagonal-Zero/internal/config"
)

// Speaker plays cues through the beep speaker, mixing everything into one
// stream. The terminal front end uses it.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Buffer
	musicCtrl   *beep.Ctrl
	volume      float64
	musicVolume float64
	limiter     *limiter
	initialized bool
}

// NewSpeaker opens the audio device.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	s := &Speaker{
		mixer:       &beep.Mixer{},
		volume:      cfg.Volume,
		musicVolume: cfg.MusicVolume,
		limiter:     newLimiter(),
	}
	m, err := Music(1)
	if err != nil {
		return nil, fmt.Errorf("render music: %w", err)
	}
	s.music = Buffered(m)

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play mixes a cue in unless the same cue played too recently.
func (s *Speaker) Play(c Cue) {
	if !s.limiter.allow(c) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(Build(c, s.volume))
	speaker.Unlock()
}

// StartMusic starts or resumes the background loop.
func (s *Speaker) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if s.musicCtrl == nil {
		loop := beep.Loop(-1, s.music.Streamer(0, s.music.Len()))
		s.musicCtrl = &beep.Ctrl{Streamer: newVolume(loop, s.musicVolume)}
		s.mixer.Add(s.musicCtrl)
	}
	s.musicCtrl.Paused = false
}

// StopMusic pauses the background loop.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.musicCtrl == nil {
		return
	}
	speaker.Lock()
	s.musicCtrl.Paused = true
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.musicCtrl = nil
	s.initialized = false
	speaker.Close()
}
