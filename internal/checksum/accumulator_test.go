package checksum

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const seedHex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestNewRendersSeed(t *testing.T) {
	if got := New().String(); got != seedHex {
		t.Fatalf("unexpected seed rendering: %s", got)
	}
}

func TestFoldAddsLanesIndependently(t *testing.T) {
	acc := New()
	acc.Fold(Block{1, 2, 3, 4, 5, 6, 7, 8})
	got := acc.Sum()
	for i := range got {
		if want := Seed[i] + uint32(i+1); got[i] != want {
			t.Fatalf("lane %d: got %08x want %08x", i, got[i], want)
		}
	}
}

func TestFoldWraps(t *testing.T) {
	acc := New()
	acc.Fold(Block{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff})
	const want = "e3b0c44198fc1c139afbf4c7996fb92327ae41e3649b934ba495991a7852b854"
	if got := acc.String(); got != want {
		t.Fatalf("unexpected wrapped state: %s", got)
	}
}

func TestFoldBytesIsLittleEndian(t *testing.T) {
	raw := make([]byte, BlockSize)
	raw[0] = 0x01 // lane 0 += 1
	raw[7] = 0x01 // lane 1 += 1<<24
	acc := New()
	acc.FoldBytes(raw)
	sum := acc.Sum()
	if sum[0] != Seed[0]+1 {
		t.Fatalf("lane 0: got %08x", sum[0])
	}
	if sum[1] != Seed[1]+1<<24 {
		t.Fatalf("lane 1: got %08x", sum[1])
	}
}

func TestDecodeBlockPanicsOnWrongSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short block")
		}
	}()
	DecodeBlock(make([]byte, BlockSize-1))
}

func TestBlockReorderingKeepsFingerprint(t *testing.T) {
	a := bytes.Repeat([]byte{0x11}, BlockSize)
	b := []byte("0123456789abcdefghijklmnopqrstuv")
	c := bytes.Repeat([]byte{0xfe}, BlockSize)

	forward := New()
	for _, blk := range [][]byte{a, b, c} {
		forward.FoldBytes(blk)
	}
	reversed := New()
	for _, blk := range [][]byte{c, b, a} {
		reversed.FoldBytes(blk)
	}
	if forward.String() != reversed.String() {
		t.Fatalf("block order changed fingerprint: %s vs %s", forward, reversed)
	}
}

func TestParseRoundTrip(t *testing.T) {
	acc := New()
	acc.FoldBytes([]byte("the quick brown fox jumps over t"))
	rendered := acc.String()
	if len(rendered) != HexLen {
		t.Fatalf("unexpected length %d", len(rendered))
	}
	if strings.ToLower(rendered) != rendered {
		t.Fatalf("expected lowercase rendering, got %s", rendered)
	}

	parsed, err := Parse(rendered)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.String() != rendered {
		t.Fatalf("round trip mismatch: %s vs %s", parsed, rendered)
	}
	if parsed.Sum() != acc.Sum() {
		t.Fatal("round trip changed lanes")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"short":     seedHex[:63],
		"long":      seedHex + "0",
		"uppercase": strings.ToUpper(seedHex),
		"non-hex":   "z" + seedHex[1:],
		"sign":      "+" + seedHex[1:],
		"empty":     "",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(input); !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}
