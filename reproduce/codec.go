package reproduce

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// SerializationError reports a Token string that could not be decoded:
// truncated input, a corrupted varint, or a path byte outside {0, 1}.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("reproduce: %s", e.Reason)
}

// Encode renders a Token as an opaque, URL-safe string: a varint-tagged
// binary layout (seed, path length + bytes, counter, size, shrink-path
// length + zigzag varints) base64-encoded with padding stripped, so it
// reads as a single word a user can paste into a test or bug report.
func Encode(t Token) string {
	buf := make([]byte, 0, 16+len(t.Path)+4*len(t.ShrinkPath))
	var scratch [binary.MaxVarintLen64]byte

	buf = appendUvarint(buf, scratch[:], t.Seed)
	buf = appendUvarint(buf, scratch[:], uint64(len(t.Path)))
	buf = append(buf, t.Path...)
	buf = appendUvarint(buf, scratch[:], t.Counter)
	buf = appendUvarint(buf, scratch[:], zigzagEncode(int64(t.Size)))
	buf = appendUvarint(buf, scratch[:], uint64(len(t.ShrinkPath)))
	for _, idx := range t.ShrinkPath {
		buf = appendUvarint(buf, scratch[:], zigzagEncode(int64(idx)))
	}

	return base64.RawURLEncoding.EncodeToString(buf)
}

// Decode parses a string produced by Encode back into a Token, returning a
// *SerializationError if the input is truncated, malformed, or contains a
// path byte other than 0/1.
func Decode(s string) (Token, error) {
	buf, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Token{}, &SerializationError{Reason: "invalid base64: " + err.Error()}
	}

	r := &reader{buf: buf}
	seed, err := r.uvarint()
	if err != nil {
		return Token{}, err
	}
	pathLen, err := r.uvarint()
	if err != nil {
		return Token{}, err
	}
	path, err := r.bytes(int(pathLen))
	if err != nil {
		return Token{}, err
	}
	for _, b := range path {
		if b != 0 && b != 1 {
			return Token{}, &SerializationError{Reason: "path byte out of range"}
		}
	}
	counter, err := r.uvarint()
	if err != nil {
		return Token{}, err
	}
	rawSize, err := r.uvarint()
	if err != nil {
		return Token{}, err
	}
	shrinkLen, err := r.uvarint()
	if err != nil {
		return Token{}, err
	}
	shrinkPath := make([]int, shrinkLen)
	for i := range shrinkPath {
		v, err := r.uvarint()
		if err != nil {
			return Token{}, err
		}
		shrinkPath[i] = int(zigzagDecode(v))
	}
	if !r.exhausted() {
		return Token{}, &SerializationError{Reason: "trailing bytes after token"}
	}

	return Token{
		Seed:       seed,
		Path:       path,
		Counter:    counter,
		Size:       int(zigzagDecode(rawSize)),
		ShrinkPath: shrinkPath,
	}, nil
}

func appendUvarint(buf, scratch []byte, v uint64) []byte {
	n := binary.PutUvarint(scratch, v)
	return append(buf, scratch[:n]...)
}

func zigzagEncode(v int64) uint64 { return uint64((v << 1) ^ (v >> 63)) }
func zigzagDecode(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

type reader struct {
	buf []byte
	pos int
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, &SerializationError{Reason: "truncated varint"}
	}
	r.pos += n
	return v, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, &SerializationError{Reason: "truncated byte slice"}
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *reader) exhausted() bool { return r.pos == len(r.buf) }
