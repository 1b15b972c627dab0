package checksum

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Words is the number of 32-bit lanes in the accumulator.
	Words = 8
	// BlockSize is the number of bytes folded per step.
	BlockSize = Words * 4
	// HexLen is the length of a rendered fingerprint.
	HexLen = Words * 8
)

// Seed is the initial lane vector.
var Seed = Block{
	0xe3b0c442, 0x98fc1c14, 0x9afbf4c8, 0x996fb924,
	0x27ae41e4, 0x649b934c, 0xa495991b, 0x7852b855,
}

// ErrMalformed reports a fingerprint string that Parse cannot decode.
var ErrMalformed = errors.New("malformed fingerprint")

// Block is one 32-byte chunk decoded into little-endian words.
type Block [Words]uint32

// DecodeBlock converts exactly BlockSize bytes into a Block.
func DecodeBlock(b []byte) Block {
	if len(b) != BlockSize {
		panic(fmt.Sprintf("checksum: block must be %d bytes, got %d", BlockSize, len(b)))
	}
	var blk Block
	for i := range blk {
		blk[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return blk
}

// Accumulator is the running fingerprint state. The zero value is not
// seeded; use New.
type Accumulator struct {
	state Block
}

// New returns an accumulator initialised to Seed.
func New() *Accumulator {
	return &Accumulator{state: Seed}
}

// Fold adds block into the state lane by lane, wrapping modulo 2^32.
func (a *Accumulator) Fold(block Block) {
	for i := range a.state {
		a.state[i] += block[i]
	}
}

// FoldBytes decodes a raw 32-byte block and folds it.
func (a *Accumulator) FoldBytes(b []byte) {
	a.Fold(DecodeBlock(b))
}

// Sum returns a copy of the current lanes.
func (a *Accumulator) Sum() Block {
	return a.state
}

// String renders the state as 64 lowercase hex digits, each lane padded to
// eight digits, in lane order.
func (a *Accumulator) String() string {
	var sb strings.Builder
	sb.Grow(HexLen)
	for _, word := range a.state {
		fmt.Fprintf(&sb, "%08x", word)
	}
	return sb.String()
}

// Parse decodes a rendered fingerprint. Only the exact form produced by
// String is accepted, so Parse(s).String() == s for every valid s.
func Parse(s string) (*Accumulator, error) {
	if len(s) != HexLen {
		return nil, fmt.Errorf("%w: want %d characters, got %d", ErrMalformed, HexLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformed, c, i)
		}
	}
	acc := &Accumulator{}
	for i := range acc.state {
		word, err := strconv.ParseUint(s[i*8:(i+1)*8], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		acc.state[i] = uint32(word)
	}
	return acc, nil
}
