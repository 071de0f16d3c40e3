package corpus

import (
	"strings"
	"testing"

	"github.com/ayatlab/verseref/internal/domain"
)

func loadTiny(t *testing.T) *Index {
	t.Helper()
	idx, err := Load(strings.NewReader(tinyDataset), LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return idx
}

func TestIndex_ValidAddress(t *testing.T) {
	idx := loadTiny(t)

	tests := []struct {
		addr domain.VerseAddress
		want bool
	}{
		{domain.VerseAddress{Surah: 1, Ayah: 1}, true},
		{domain.VerseAddress{Surah: 1, Ayah: 7}, true}, // canonical even if not loaded
		{domain.VerseAddress{Surah: 1, Ayah: 8}, false},
		{domain.VerseAddress{Surah: 2, Ayah: 286}, true},
		{domain.VerseAddress{Surah: 2, Ayah: 287}, false},
		{domain.VerseAddress{Surah: 0, Ayah: 1}, false},
		{domain.VerseAddress{Surah: 115, Ayah: 1}, false},
	}
	for _, tt := range tests {
		if got := idx.ValidAddress(tt.addr); got != tt.want {
			t.Errorf("ValidAddress(%v) = %v, want %v", tt.addr, got, tt.want)
		}
	}
}

func TestIndex_ExactNormalized(t *testing.T) {
	idx := loadTiny(t)

	v, ok := idx.ExactNormalized("قل هو الله أحد")
	if !ok {
		t.Fatal("exact lookup missed")
	}
	if v.Address != (domain.VerseAddress{Surah: 112, Ayah: 1}) {
		t.Errorf("got %v", v.Address)
	}

	if _, ok := idx.ExactNormalized("لا يوجد"); ok {
		t.Error("lookup of absent text should miss")
	}
}

func TestIndex_PostingLists(t *testing.T) {
	idx := loadTiny(t)

	// "الله" appears in all three verses.
	bm := idx.PostingList("الله")
	if bm == nil || bm.GetCardinality() != 3 {
		t.Fatalf("posting list for الله = %v", bm)
	}

	// Union over query tokens.
	got := idx.CandidatesForTokens([]string{"قل", "الصمد"})
	if got.GetCardinality() != 2 {
		t.Errorf("candidates = %d, want 2", got.GetCardinality())
	}

	if idx.PostingList("غائب") != nil {
		t.Error("absent token should have no posting list")
	}
}

func TestIndex_TokenSet(t *testing.T) {
	idx := loadTiny(t)

	// 112:1 sits at position 1 in canonical order.
	set := idx.TokenSet(1)
	if len(set) != 4 {
		t.Errorf("token set size = %d, want 4", len(set))
	}
	if _, ok := set["الله"]; !ok {
		t.Error("token set missing الله")
	}
}

func TestSurahTable(t *testing.T) {
	all := Surahs()
	if len(all) != TotalSurahs {
		t.Fatalf("Surahs = %d, want %d", len(all), TotalSurahs)
	}

	sum := 0
	for _, s := range all {
		sum += s.Ayahs
	}
	if sum != TotalVerses {
		t.Errorf("ayah counts sum to %d, want %d", sum, TotalVerses)
	}

	info, ok := SurahByNumber(2)
	if !ok || info.NameEn != "Al-Baqarah" || info.Ayahs != 286 {
		t.Errorf("SurahByNumber(2) = %+v, %v", info, ok)
	}
	if _, ok := SurahByNumber(0); ok {
		t.Error("surah 0 should not resolve")
	}
	if _, ok := SurahByNumber(115); ok {
		t.Error("surah 115 should not resolve")
	}

	if AyahCount(114) != 6 {
		t.Errorf("AyahCount(114) = %d, want 6", AyahCount(114))
	}
	if AyahCount(200) != 0 {
		t.Errorf("AyahCount(200) = %d, want 0", AyahCount(200))
	}
}

func TestAliasLookup(t *testing.T) {
	idx := loadTiny(t)

	tests := []struct {
		name  string
		surah int
	}{
		{"البقرة", 2},
		{"سورة البقرة", 2}, // normalized away by Key
		{"baqarah", 2},
		{"al-baqarah", 2},
		{"Al-Baqarah", 2},
		{"الفاتحة", 1},
		{"fatiha", 1},
		{"الإخلاص", 112},
		{"الاخلاص", 112},
		{"ikhlas", 112},
		{"يس", 36},
		{"yaseen", 36},
		{"ya-sin", 36},
		{"الرحمن", 55},
		{"inshirah", 94},
		{"bani israil", 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.AliasLookup(tt.name)
			if !ok {
				t.Fatalf("AliasLookup(%q) missed", tt.name)
			}
			if got != tt.surah {
				t.Errorf("AliasLookup(%q) = %d, want %d", tt.name, got, tt.surah)
			}
		})
	}

	if _, ok := idx.AliasLookup("atlantis"); ok {
		t.Error("unknown name should miss")
	}
}
