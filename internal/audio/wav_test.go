package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV_Header(t *testing.T) {
	pcm := pcm16(1, 2, 3, 4)
	f := Format{SampleRate: 24000, Channels: 2}

	wav, err := EncodeWAV(pcm, f)
	require.NoError(t, err)
	require.Len(t, wav, 44+len(pcm))

	le := binary.LittleEndian
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), le.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint32(16), le.Uint32(wav[16:20]))
	assert.Equal(t, uint16(1), le.Uint16(wav[20:22]))
	assert.Equal(t, uint16(2), le.Uint16(wav[22:24]))
	assert.Equal(t, uint32(24000), le.Uint32(wav[24:28]))
	assert.Equal(t, uint32(24000*4), le.Uint32(wav[28:32]))
	assert.Equal(t, uint16(4), le.Uint16(wav[32:34]))
	assert.Equal(t, uint16(16), le.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), le.Uint32(wav[40:44]))
	assert.True(t, bytes.Equal(pcm, wav[44:]))
}

func TestEncodeWAV_TrimsPartialFrame(t *testing.T) {
	wav, err := EncodeWAV(append(pcm16(7, 8), 0x01), DefaultFormat)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Len(t, wav, 48)
}

func TestWriteWAV_InvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWAV(&buf, pcm16(1), Format{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriteWAVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narration.wav")
	require.NoError(t, WriteWAVFile(path, pcm16(1, 2, 3), DefaultFormat))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 44+6)
}
