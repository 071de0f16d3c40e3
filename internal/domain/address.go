package domain

import "fmt"

// Surah numbering bounds.
const (
	MinSurah = 1
	MaxSurah = 114
)

// VerseAddress identifies a single verse as a (surah, ayah) pair.
// Surah is 1..114; Ayah is 1..ayah-count-of-the-surah. The structural
// bounds are checked here; the per-surah ayah upper bound is only known
// to the corpus index and is validated there.
type VerseAddress struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}

// NewVerseAddress validates the structural bounds of a verse address.
func NewVerseAddress(surah, ayah int) (VerseAddress, error) {
	if surah < MinSurah || surah > MaxSurah {
		return VerseAddress{}, fmt.Errorf("%w: surah %d out of range %d..%d",
			ErrInvalidReference, surah, MinSurah, MaxSurah)
	}
	if ayah < 1 {
		return VerseAddress{}, fmt.Errorf("%w: ayah %d must be positive", ErrInvalidReference, ayah)
	}
	return VerseAddress{Surah: surah, Ayah: ayah}, nil
}

// String renders the address in the conventional "surah:ayah" form.
func (a VerseAddress) String() string {
	return fmt.Sprintf("%d:%d", a.Surah, a.Ayah)
}

// Before reports whether a precedes b in canonical verse order.
func (a VerseAddress) Before(b VerseAddress) bool {
	if a.Surah != b.Surah {
		return a.Surah < b.Surah
	}
	return a.Ayah < b.Ayah
}
