package reproduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/gorapid/reproduce"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tok := reproduce.Token{
		Seed:       123456789,
		Path:       []byte{0, 1, 1, 0},
		Counter:    42,
		Size:       37,
		ShrinkPath: []int{0, 2, 1},
	}
	s := reproduce.Encode(tok)
	got, err := reproduce.Decode(s)
	assert.NoError(t, err)
	assert.True(t, tok.Equal(got))
}

func TestEncodeDecodeEmptyToken(t *testing.T) {
	tok := reproduce.Token{}
	got, err := reproduce.Decode(reproduce.Encode(tok))
	assert.NoError(t, err)
	assert.True(t, tok.Equal(got))
}

func TestDecodeRejectsInvalidBase64(t *testing.T) {
	_, err := reproduce.Decode("not valid base64!!")
	assert.Error(t, err)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	full := reproduce.Encode(reproduce.Token{Seed: 99, Path: []byte{0, 1}, Counter: 5, Size: 10})
	truncated := full[:len(full)/2]
	_, err := reproduce.Decode(truncated)
	assert.Error(t, err)
}

func TestDecodeRejectsBadPathByte(t *testing.T) {
	// Encode writes Path bytes as given, so a path byte outside {0,1}
	// yields a string that Decode must reject.
	tok := reproduce.Token{Seed: 1, Path: []byte{0, 2}, Counter: 0, Size: 1}
	s := reproduce.Encode(tok)
	_, err := reproduce.Decode(s)
	assert.Error(t, err)
	var serr *reproduce.SerializationError
	assert.ErrorAs(t, err, &serr)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	s := reproduce.Encode(reproduce.Token{Seed: 7, Size: 3})
	_, err := reproduce.Decode(s + "AA")
	assert.Error(t, err)
}
