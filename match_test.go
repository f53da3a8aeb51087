package lz77

import (
	"bytes"
	"errors"
	"testing"
)

// naiveMatch resolves a back-reference one byte at a time.
func naiveMatch(dict []byte, length, offset int) []byte {
	out := make([]byte, length)
	base := len(dict) - offset
	for i := range out {
		out[i] = dict[base+i%offset]
	}

	return out
}

func TestAppendMatch(t *testing.T) {
	tests := []struct {
		name   string
		dict   []byte
		length int
		offset int
		want   []byte
	}{
		{"whole-window", []byte{1, 2, 3, 4, 5, 6, 7}, 3, 7, []byte{1, 2, 3}},
		{"single-byte", []byte{1, 2, 3, 0xF4, 0x15, 6}, 1, 5, []byte{2}},
		{
			"wrap-window-4", []byte{0, 1, 0, 0, 0}, 16, 4,
			[]byte{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		},
		{"run-offset-1", []byte{1, 2, 0xF4, 8, 0}, 3, 1, []byte{0, 0, 0}},
		{"offset-equals-length", []byte("abc"), 3, 3, []byte("abc")},
		{"wrap-partial-window", []byte("xyzabc"), 7, 3, []byte("abcabca")},
		{"zero-length", []byte("abc"), 0, 2, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := append([]byte(nil), tt.dict...)
			got, err := appendMatch(dict, tt.length, tt.offset)
			if err != nil {
				t.Fatalf("appendMatch failed: %v", err)
			}
			if !bytes.Equal(got[:len(tt.dict)], tt.dict) {
				t.Fatalf("prefix changed: %v", got[:len(tt.dict)])
			}
			if tail := got[len(tt.dict):]; !bytes.Equal(tail, tt.want) {
				t.Fatalf("got % X, want % X", tail, tt.want)
			}
		})
	}
}

func TestAppendMatchWrapLaw(t *testing.T) {
	dict := []byte("0123456789abcdefghij")
	for offset := 1; offset <= len(dict); offset++ {
		for _, length := range []int{1, offset, offset + 1, 2*offset + 3, MaxMatch} {
			want := naiveMatch(dict, length, offset)

			// Exercise both the reallocating and the in-place append paths.
			for _, spare := range []int{0, MaxMatch} {
				buf := make([]byte, len(dict), len(dict)+spare)
				copy(buf, dict)

				got, err := appendMatch(buf, length, offset)
				if err != nil {
					t.Fatalf("length=%d offset=%d: %v", length, offset, err)
				}
				if !bytes.Equal(got[len(dict):], want) {
					t.Fatalf("length=%d offset=%d spare=%d: got %q, want %q", length, offset, spare, got[len(dict):], want)
				}
			}
		}
	}
}

func TestAppendMatchOffsetOutOfRange(t *testing.T) {
	dict := []byte{1, 2, 3}
	for _, offset := range []int{0, 4, MaxOffset} {
		got, err := appendMatch(dict, 3, offset)
		if !errors.Is(err, ErrOffsetOutOfRange) {
			t.Fatalf("offset=%d: want ErrOffsetOutOfRange, got %v", offset, err)
		}
		if !bytes.Equal(got, dict) {
			t.Fatalf("offset=%d: dict modified: %v", offset, got)
		}
	}
}

func TestDictionaryOutputLimit(t *testing.T) {
	d := &dictionary{}
	d.reset(Options{MaxOutputSize: 4})

	if err := d.appendLiteral(bytes.NewReader([]byte("ab")), 2); err != nil {
		t.Fatal(err)
	}
	if err := d.appendMatch(2, 1); err != nil {
		t.Fatal(err)
	}
	if err := d.appendMatch(1, 1); !errors.Is(err, ErrOutputTooLarge) {
		t.Fatalf("want ErrOutputTooLarge, got %v", err)
	}
	if got := string(d.buf); got != "abbb" {
		t.Fatalf("got %q, want %q", got, "abbb")
	}
}

func TestDictionaryTruncatedLiteralKeepsOutput(t *testing.T) {
	d := &dictionary{}
	d.reset(Options{})

	if err := d.appendLiteral(bytes.NewReader([]byte("xy")), 2); err != nil {
		t.Fatal(err)
	}

	err := d.appendLiteral(bytes.NewReader([]byte("z")), 3)
	if !errors.Is(err, ErrTruncatedLiteral) {
		t.Fatalf("want ErrTruncatedLiteral, got %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len = %d, want 2", d.Len())
	}
}
