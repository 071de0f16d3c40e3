// Package corpustest provides a small embedded corpus for tests:
// surahs 1, 112, 113 and 114 in full, plus selected verses of 2, 36,
// 55 and 103 (37 verses total).
package corpustest

import (
	"bytes"
	_ "embed"
	"testing"

	"github.com/ayatlab/verseref/internal/repository/corpus"
)

//go:embed mini.json
var mini []byte

// Load builds an index over the embedded mini corpus.
func Load(t *testing.T) *corpus.Index {
	t.Helper()
	idx, err := corpus.Load(bytes.NewReader(mini), corpus.LoadOptions{})
	if err != nil {
		t.Fatalf("load mini corpus: %v", err)
	}
	return idx
}

// JSON returns the raw embedded dataset, for loaders that want a
// reader instead of a built index.
func JSON() []byte {
	out := make([]byte, len(mini))
	copy(out, mini)
	return out
}

// MustLoad is Load without a testing.T, for benchmarks and examples.
func MustLoad() *corpus.Index {
	idx, err := corpus.Load(bytes.NewReader(mini), corpus.LoadOptions{})
	if err != nil {
		panic(err)
	}
	return idx
}
