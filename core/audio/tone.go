package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// ToneGenerator synthesises a sine wave as little-endian linear16 samples.
// The phase carries over between Fill calls so consecutive buffers join
// without clicks.
type ToneGenerator struct {
	sampleRate float64
	amplitude  float64
	frequency  float64
	phase      float64
}

func NewToneGenerator(encodingInfo EncodingInfo) *ToneGenerator {
	if encodingInfo.IsZero() {
		encodingInfo = GetDefaultEncodingInfo()
	}

	return &ToneGenerator{
		sampleRate: float64(encodingInfo.SampleRate),
		amplitude:  DefaultAmplitude,
	}
}

// SetFrequency changes the pitch; zero silences the generator.
func (g *ToneGenerator) SetFrequency(hz int) {
	if hz <= 0 {
		g.frequency = 0
		g.phase = 0
		return
	}
	g.frequency = float64(hz)
}

func (g *ToneGenerator) Frequency() int {
	return int(g.frequency)
}

// Fill writes as many whole samples as fit into buf and returns the number of
// bytes written. A silent generator writes zeros.
func (g *ToneGenerator) Fill(buf []byte) int {
	samples := len(buf) / 2
	if g.frequency == 0 {
		clear(buf[:samples*2])
		return samples * 2
	}

	step := 2 * math.Pi * g.frequency / g.sampleRate
	for i := range samples {
		value := int16(math.Sin(g.phase) * g.amplitude * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(value))
		g.phase += step
		if g.phase >= 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
	}
	return samples * 2
}

// RenderMelody renders the whole melody into a single PCM buffer.
func RenderMelody(melody Melody, encodingInfo EncodingInfo) []byte {
	if encodingInfo.IsZero() {
		encodingInfo = GetDefaultEncodingInfo()
	}

	generator := NewToneGenerator(encodingInfo)
	out := make([]byte, 0, bufferSize(melody.Duration(), encodingInfo))
	for _, note := range melody {
		chunk := make([]byte, bufferSize(note.Duration, encodingInfo))
		generator.SetFrequency(note.Frequency)
		generator.Fill(chunk)
		out = append(out, chunk...)
	}
	return out
}

func bufferSize(d time.Duration, encodingInfo EncodingInfo) int {
	samples := int(d * time.Duration(encodingInfo.SampleRate) / time.Second)
	return samples * encodingInfo.Format.ByteSize()
}
