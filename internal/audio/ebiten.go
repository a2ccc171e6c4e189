package audio

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Garsondee/Hexagonal-Zero/internal/config"
)

// maxVoices bounds effect players alive at once.
const maxVoices = 16

// Player plays pre-rendered cues through ebiten's audio context. It must
// be created once per process.
type Player struct {
	mu      sync.Mutex
	ctx     *audio.Context
	pcm     [cueCount][]byte
	music   []byte
	loop    *audio.Player
	voices  []*audio.Player
	volume  float64
	musicV  float64
	limiter *limiter
}

// NewPlayer renders every cue and the music loop and opens the audio
// context.
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	p := &Player{volume: cfg.Volume, musicV: cfg.MusicVolume, limiter: newLimiter()}
	for c := Cue(0); c < cueCount; c++ {
		p.pcm[c] = Render(Build(c, 1))
		if len(p.pcm[c]) == 0 {
			return nil, fmt.Errorf("render cue %s: empty", c)
		}
	}
	m, err := Music(1)
	if err != nil {
		return nil, fmt.Errorf("render music: %w", err)
	}
	p.music = Render(m)

	p.ctx = audio.CurrentContext()
	if p.ctx == nil {
		p.ctx = audio.NewContext(int(SampleRate))
	}
	if p.ctx.SampleRate() != int(SampleRate) {
		return nil, fmt.Errorf("audio context runs at %d Hz, want %d", p.ctx.SampleRate(), SampleRate)
	}
	return p, nil
}

// Play starts a cue unless the same cue played too recently.
func (p *Player) Play(c Cue) {
	if !p.limiter.allow(c) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
		} else {
			_ = v.Close()
		}
	}
	p.voices = live
	if len(p.voices) >= maxVoices {
		return
	}

	v := p.ctx.NewPlayerFromBytes(p.pcm[c])
	v.SetVolume(p.volume)
	v.Play()
	p.voices = append(p.voices, v)
}

// StartMusic plays the background loop.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loop == nil {
		loop := audio.NewInfiniteLoop(bytes.NewReader(p.music), int64(len(p.music)))
		lp, err := p.ctx.NewPlayer(loop)
		if err != nil {
			return
		}
		lp.SetVolume(p.musicV)
		p.loop = lp
	}
	p.loop.Play()
}

// StopMusic pauses the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loop != nil {
		p.loop.Pause()
	}
}

// Close stops all playback.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, v := range p.voices {
		_ = v.Close()
	}
	p.voices = nil
	if p.loop != nil {
		err := p.loop.Close()
		p.loop = nil
		return err
	}
	return nil
}
