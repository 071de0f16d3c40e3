package corpus

import (
	"errors"
	"strings"
	"testing"

	"github.com/ayatlab/verseref/internal/domain"
)

const tinyDataset = `{
  "verses": [
    {"surah": 112, "ayah": 2, "text": "اللَّهُ الصَّمَدُ", "roots": ["اله", "صمد"], "themes": ["tawhid"], "structure": "nominal"},
    {"surah": 112, "ayah": 1, "text": "قُلْ هُوَ اللَّهُ أَحَدٌ", "roots": ["قول", "اله", "احد"], "themes": ["tawhid"], "structure": "imperative"},
    {"surah": 1, "ayah": 1, "text": "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ", "themes": ["mercy"]}
  ]
}`

func TestLoad_BuildsOrderedIndex(t *testing.T) {
	idx, err := Load(strings.NewReader(tinyDataset), LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if idx.Len() != 3 {
		t.Fatalf("Len = %d, want 3", idx.Len())
	}

	// Canonical order regardless of file order.
	want := []domain.VerseAddress{{Surah: 1, Ayah: 1}, {Surah: 112, Ayah: 1}, {Surah: 112, Ayah: 2}}
	for i, w := range want {
		if got := idx.At(i).Address; got != w {
			t.Errorf("At(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestLoad_NormalizesAndTokenizes(t *testing.T) {
	idx, err := Load(strings.NewReader(tinyDataset), LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	v, ok := idx.Verse(domain.VerseAddress{Surah: 112, Ayah: 1})
	if !ok {
		t.Fatal("112:1 missing")
	}
	if v.Normalized != "قل هو الله أحد" {
		t.Errorf("Normalized = %q", v.Normalized)
	}
	if len(v.Tokens) != 4 {
		t.Errorf("Tokens = %v", v.Tokens)
	}
	if v.SurahNameEn != "Al-Ikhlas" {
		t.Errorf("SurahNameEn = %q", v.SurahNameEn)
	}
	if v.Structure != domain.StructureImperative {
		t.Errorf("Structure = %q", v.Structure)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty dataset", `{"verses": []}`},
		{"malformed json", `{"verses": [`},
		{"surah out of range", `{"verses": [{"surah": 115, "ayah": 1, "text": "x"}]}`},
		{"ayah beyond surah", `{"verses": [{"surah": 112, "ayah": 5, "text": "x"}]}`},
		{"empty text", `{"verses": [{"surah": 1, "ayah": 1, "text": ""}]}`},
		{"unknown structure", `{"verses": [{"surah": 1, "ayah": 1, "text": "x", "structure": "lyrical"}]}`},
		{"duplicate verse", `{"verses": [
			{"surah": 1, "ayah": 1, "text": "x"},
			{"surah": 1, "ayah": 1, "text": "y"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.json), LoadOptions{})
			if !errors.Is(err, domain.ErrCorpusUnavailable) {
				t.Errorf("err = %v, want ErrCorpusUnavailable", err)
			}
		})
	}
}

func TestLoad_RequireComplete(t *testing.T) {
	_, err := Load(strings.NewReader(tinyDataset), LoadOptions{RequireComplete: true})
	if !errors.Is(err, domain.ErrCorpusUnavailable) {
		t.Errorf("partial dataset with RequireComplete: err = %v, want ErrCorpusUnavailable", err)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("/nonexistent/quran.json", LoadOptions{})
	if !errors.Is(err, domain.ErrCorpusUnavailable) {
		t.Errorf("err = %v, want ErrCorpusUnavailable", err)
	}
}
