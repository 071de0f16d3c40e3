package resolve

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/repository/corpus/corpustest"
	"github.com/ayatlab/verseref/internal/resolver"
)

func newService(t *testing.T) *Service {
	t.Helper()
	idx := corpustest.Load(t)
	return New(idx, resolver.New(idx), zap.NewNop())
}

func TestResolve_StructuredReference(t *testing.T) {
	s := newService(t)

	tests := []struct {
		name        string
		query       string
		surah, ayah int
	}{
		{"numeric pair", "2:255", 2, 255},
		{"arabic-indic digits", "٢:٢٥٥", 2, 255},
		{"space separator", "2 255", 2, 255},
		{"surah prefix with name", "سورة البقرة 255", 2, 255},
		{"transliterated name", "al-baqarah 255", 2, 255},
		{"bare surah number", "112", 112, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Resolve(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if res.Decision != domain.DecisionAuto {
				t.Fatalf("decision = %q, want auto", res.Decision)
			}
			if res.BestMatch == nil {
				t.Fatal("auto decision without best match")
			}
			want := domain.VerseAddress{Surah: tt.surah, Ayah: tt.ayah}
			if res.BestMatch.Address != want {
				t.Errorf("address = %v, want %v", res.BestMatch.Address, want)
			}
			if res.BestMatch.MatchType != domain.MatchExact {
				t.Errorf("match type = %q, want exact", res.BestMatch.MatchType)
			}
			if res.BestMatch.Confidence != 1.0 {
				t.Errorf("confidence = %g, want 1", res.BestMatch.Confidence)
			}
		})
	}
}

func TestResolve_EquivalentFormsAgree(t *testing.T) {
	s := newService(t)

	forms := []string{"2:255", "2 255", "٢:٢٥٥", "سورة البقرة 255", "al-baqarah 255", "البقرة 255"}
	for _, f := range forms {
		res, err := s.Resolve(context.Background(), f)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", f, err)
		}
		if res.BestMatch == nil || res.BestMatch.Address != (domain.VerseAddress{Surah: 2, Ayah: 255}) {
			t.Errorf("Resolve(%q) did not land on 2:255: %+v", f, res)
		}
	}
}

func TestResolve_OutOfRangeAyahIsNotFound(t *testing.T) {
	s := newService(t)

	// 1:8 parses but exceeds Al-Fatihah's seven ayahs: an honest miss,
	// not a request error.
	res, err := s.Resolve(context.Background(), "1:8")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision != domain.DecisionNotFound {
		t.Errorf("decision = %q, want not_found", res.Decision)
	}
	if res.BestMatch != nil || len(res.Candidates) != 0 {
		t.Error("not_found must carry no candidates")
	}
}

func TestResolve_UnloadedVerseIsNotFound(t *testing.T) {
	s := newService(t)

	// 3:1 is canonical but the mini corpus does not include surah 3.
	res, err := s.Resolve(context.Background(), "3:1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision != domain.DecisionNotFound {
		t.Errorf("decision = %q, want not_found", res.Decision)
	}
}

func TestResolve_ExactVerseText(t *testing.T) {
	s := newService(t)

	res, err := s.Resolve(context.Background(), "قُلْ هُوَ اللَّهُ أَحَدٌ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision != domain.DecisionAuto {
		t.Fatalf("decision = %q, want auto", res.Decision)
	}
	if res.BestMatch.Address != (domain.VerseAddress{Surah: 112, Ayah: 1}) {
		t.Errorf("address = %v, want 112:1", res.BestMatch.Address)
	}
}

func TestResolve_ShortInputFails(t *testing.T) {
	s := newService(t)

	_, err := s.Resolve(context.Background(), "ab")
	if !errors.Is(err, domain.ErrInputTooShort) {
		t.Errorf("err = %v, want ErrInputTooShort", err)
	}
}

func TestResolve_ShortAmbiguousWordNeverAuto(t *testing.T) {
	s := newService(t)

	// "الله" appears in dozens of verses; it must never auto-resolve.
	res, err := s.Resolve(context.Background(), "الله")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision == domain.DecisionAuto {
		t.Error("a single common word must not auto-resolve")
	}
	if len(res.Candidates) > domain.MaxCandidates {
		t.Errorf("candidates = %d, cap is %d", len(res.Candidates), domain.MaxCandidates)
	}
}

func TestResolve_PopulatesQueryFields(t *testing.T) {
	s := newService(t)

	res, err := s.Resolve(context.Background(), "  سورة البقرة ٢٥٥  ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.QueryOriginal != "سورة البقرة ٢٥٥" {
		t.Errorf("QueryOriginal = %q", res.QueryOriginal)
	}
	if res.QueryNormalized != "البقرة 255" {
		t.Errorf("QueryNormalized = %q", res.QueryNormalized)
	}
}

func TestResolve_CancelledContext(t *testing.T) {
	s := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Resolve(ctx, "2:255")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
