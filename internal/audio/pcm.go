package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// maxRenderSamples caps Render so an endless streamer cannot hang it.
const maxRenderSamples = 30 * 44100

// Render drains s into 16-bit little-endian stereo PCM, the layout ebiten's
// audio players read.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	total := 0
	for total < maxRenderSamples {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = appendSample(out, frame[0])
			out = appendSample(out, frame[1])
		}
		total += n
		if !ok {
			break
		}
	}
	return out
}

func appendSample(b []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	return binary.LittleEndian.AppendUint16(b, uint16(int16(v*math.MaxInt16)))
}

// Buffered drains s into a beep buffer whose streamer can be sought and
// looped.
func Buffered(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(maxRenderSamples, s))
	return buf
}
