package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillatorSineRange(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, SampleRate)
	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("expected 100 samples, got %d ok=%t", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, samples[i])
		}
	}
}

func TestOscillatorStops(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, SampleRate)
	want := SampleRate.N(10 * time.Millisecond)
	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Fatalf("expected %d samples, got %d", want, total)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)
	if buf[0][0] != 0 {
		t.Fatalf("attack should start silent, got %f", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1 {
		t.Fatalf("sustain should be full scale, got %f", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Fatalf("release should end near zero, got %f", last)
	}
}

func TestRenderLayout(t *testing.T) {
	pcm := Render(Build(CueSelect, 1))
	frames := SampleRate.N(80 * time.Millisecond)
	if len(pcm) != frames*4 {
		t.Fatalf("expected %d bytes, got %d", frames*4, len(pcm))
	}
	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak < 20000 {
		t.Fatalf("select cue too quiet, peak %d", peak)
	}
}

func TestEveryCueRenders(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		if pcm := Render(Build(c, 1)); len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Fatalf("cue %s rendered %d bytes", c, len(pcm))
		}
	}
	if Cue(99).String() != "unknown" {
		t.Fatal("out of range cue should be unknown")
	}
}

func TestMusicLength(t *testing.T) {
	m, err := Music(0.3)
	if err != nil {
		t.Fatalf("Music: %v", err)
	}
	buf := Buffered(m)
	want := len(musicNotes) * SampleRate.N(musicNote)
	if buf.Len() != want {
		t.Fatalf("expected %d frames, got %d", want, buf.Len())
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := Build(CueBomb, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d not silent: %v", i, buf[i])
		}
	}
}

func TestLimiterDropsRepeats(t *testing.T) {
	l := newLimiter()
	now := time.Unix(100, 0)
	l.now = func() time.Time { return now }

	if !l.allow(CueRemove) {
		t.Fatal("first play should pass")
	}
	if l.allow(CueRemove) {
		t.Fatal("repeat inside the gap should drop")
	}
	if !l.allow(CueBlip) {
		t.Fatal("other cues are independent")
	}
	now = now.Add(cueGap[CueRemove])
	if !l.allow(CueRemove) {
		t.Fatal("play after the gap should pass")
	}
	if l.allow(cueCount) {
		t.Fatal("invalid cue should never pass")
	}
}

type cueRecorder struct {
	played []Cue
	music  int
}

func (r *cueRecorder) Play(c Cue)  { r.played = append(r.played, c) }
func (r *cueRecorder) StartMusic() { r.music++ }
func (r *cueRecorder) StopMusic()  { r.music-- }

func TestSoundMapsCalls(t *testing.T) {
	rec := &cueRecorder{}
	s := Sound{Player: rec}
	s.Rotate(true)
	s.Rotate(false)
	s.Select()
	s.Swap()
	s.Fail()
	s.Remove()
	s.Bomb()
	s.Blip()
	s.StartMusic()

	want := []Cue{CueRotateCW, CueRotateCCW, CueSelect, CueSwap, CueFail, CueRemove, CueBomb, CueBlip}
	if len(rec.played) != len(want) {
		t.Fatalf("expected %d cues, got %v", len(want), rec.played)
	}
	for i, c := range want {
		if rec.played[i] != c {
			t.Fatalf("cue %d: got %s, want %s", i, rec.played[i], c)
		}
	}
	if rec.music != 1 {
		t.Fatal("music should have started")
	}
}

var _ beep.Streamer = (*oscillator)(nil)
