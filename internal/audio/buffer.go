package audio

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Format describes interleaved PCM16LE audio.
type Format struct {
	SampleRate int `validate:"gt=0"`
	Channels   int `validate:"gt=0"`
}

// DefaultFormat is the format of narration audio: 24 kHz mono.
var DefaultFormat = Format{SampleRate: 24000, Channels: 1}

var validate = validator.New()

// Validate rejects non-positive sample rates and channel counts.
func (f Format) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid audio format: %w", err)
	}
	return nil
}

// frameSize is the number of bytes in one interleaved frame.
func (f Format) frameSize() int {
	return f.Channels * 2
}

// Buffer holds de-interleaved samples normalized to [-1.0, 1.0).
type Buffer struct {
	SampleRate int
	channels   [][]float32
}

// NewBuffer interprets data as interleaved signed 16-bit little-endian
// samples in format f. A trailing odd byte and a trailing partial frame
// are dropped. Each sample is divided by 32768, so -32768 maps to exactly
// -1.0 and no sample reaches +1.0.
func NewBuffer(data []byte, f Format) (*Buffer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	sampleCount := len(data) / 2
	frameCount := sampleCount / f.Channels

	b := &Buffer{
		SampleRate: f.SampleRate,
		channels:   make([][]float32, f.Channels),
	}
	for c := range b.channels {
		b.channels[c] = make([]float32, frameCount)
	}

	for i := range frameCount {
		base := i * f.frameSize()
		for c := range f.Channels {
			off := base + c*2
			s := int16(binary.LittleEndian.Uint16(data[off : off+2]))
			b.channels[c][i] = float32(s) / 32768.0
		}
	}
	return b, nil
}

// NumberOfChannels returns the channel count.
func (b *Buffer) NumberOfChannels() int {
	return len(b.channels)
}

// Length returns the number of frames per channel.
func (b *Buffer) Length() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Channel returns the samples of channel c. The slice is owned by the
// buffer; callers that keep it must not expect it to be copied.
func (b *Buffer) Channel(c int) []float32 {
	return b.channels[c]
}

// Duration returns the playback length.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Length()) * time.Second / time.Duration(b.SampleRate)
}
