package audio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

// EncodeWAV wraps raw PCM16LE audio bytes in a WAV container.
func EncodeWAV(pcm []byte, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, pcm, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWAVFile writes raw PCM16LE audio bytes to path as a WAV file.
func WriteWAVFile(path string, pcm []byte, f Format) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWAV(out, pcm, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteWAV writes raw PCM16LE audio bytes to out as a WAV stream. A
// trailing partial frame is dropped so the data chunk stays block aligned.
func WriteWAV(out io.Writer, pcm []byte, f Format) error {
	if err := f.Validate(); err != nil {
		return err
	}

	const (
		bitsPerSample = 16
		audioFormat   = 1 // PCM
	)

	pcm = pcm[:len(pcm)-len(pcm)%f.frameSize()]
	dataSize := uint32(len(pcm))
	byteRate := uint32(f.SampleRate * f.frameSize())
	blockAlign := uint16(f.frameSize())

	w := bufio.NewWriter(out)

	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36) + dataSize,
		[4]byte{'W', 'A', 'V', 'E'},

		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(audioFormat),
		uint16(f.Channels),
		uint32(f.SampleRate),
		byteRate,
		blockAlign,
		uint16(bitsPerSample),

		[4]byte{'d', 'a', 't', 'a'},
		dataSize,
	}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if _, err := w.Write(pcm); err != nil {
		return err
	}
	return w.Flush()
}
