// Package audio turns the raw speech payload returned by the model into
// playable audio: base64 decoding, PCM16 sample buffers and WAV files.
package audio

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrMalformedBase64 is wrapped by Decode when the input is not valid
// standard base64.
var ErrMalformedBase64 = errors.New("malformed base64 audio payload")

// Decode returns the bytes encoded by b64 (standard alphabet, padded).
func Decode(b64 string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	return data, nil
}
