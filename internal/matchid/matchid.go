// Package matchid mints sortable match identifiers.
//
// An identifier is a UUIDv7 rendered as 26 characters of Crockford base32:
// the leading 48 bits hold a millisecond timestamp, so identifiers mint in
// lexicographic order, and the tail is random.
package matchid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// Crockford's base32 alphabet, lowercase, without i, l, o, u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const idLen = 26

// RandSource supplies the random tail of an identifier. Injectable so
// tests can pin it.
type RandSource interface {
	Intn(n int) int
}

// Generator mints identifiers. The zero source falls back to crypto/rand.
type Generator struct {
	source RandSource
}

// NewGenerator builds a generator over an optional random source.
func NewGenerator(source RandSource) *Generator {
	return &Generator{source: source}
}

// New mints an identifier from crypto/rand.
func New() string {
	return NewGenerator(nil).Next()
}

// Next mints one identifier.
func (g *Generator) Next() string {
	return encode(g.uuid7())
}

// uuid7 builds a 128-bit UUIDv7: 48-bit millisecond timestamp, version and
// variant bits, random everywhere else.
func (g *Generator) uuid7() [16]byte {
	var u [16]byte
	binary.BigEndian.PutUint64(u[:8], uint64(time.Now().UnixMilli())<<16)
	if g.source != nil {
		for i := 6; i < len(u); i++ {
			u[i] = byte(g.source.Intn(256))
		}
	} else if _, err := rand.Read(u[6:]); err != nil {
		panic("matchid: " + err.Error())
	}
	u[6] = u[6]&0x0f | 0x70
	u[8] = u[8]&0x3f | 0x80
	return u
}

// encode renders 128 bits as 26 base32 characters, consuming the value
// from the low end. The leading character carries only the top three bits,
// so it never exceeds '7'.
func encode(u [16]byte) string {
	out := make([]byte, idLen)
	acc, bits, pos := uint(0), 0, idLen-1
	for i := len(u) - 1; i >= 0; i-- {
		acc |= uint(u[i]) << bits
		bits += 8
		for bits >= 5 {
			out[pos] = alphabet[acc&31]
			acc >>= 5
			bits -= 5
			pos--
		}
	}
	out[0] = alphabet[acc&31]
	return string(out)
}

// Validate checks the shape of an identifier: length, alphabet membership,
// and a leading character small enough to fit 128 bits.
func Validate(id string) error {
	if len(id) != idLen {
		return fmt.Errorf("match id must be %d characters, got %d", idLen, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("match id starts with %q, want 0-7", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %q at position %d", id[i], i)
		}
	}
	return nil
}
