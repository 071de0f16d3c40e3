package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/normalize"
)

// LoadOptions controls dataset validation.
type LoadOptions struct {
	// RequireComplete rejects datasets that do not cover all 6236
	// verses. The server sets this; tests load partial corpora.
	RequireComplete bool
}

// dataset is the on-disk JSON shape of the canonical verse dataset.
type dataset struct {
	Verses []datasetVerse `json:"verses"`
}

type datasetVerse struct {
	Surah          int      `json:"surah"`
	Ayah           int      `json:"ayah"`
	Text           string   `json:"text"`
	Roots          []string `json:"roots"`
	Themes         []string `json:"themes"`
	SemanticFields []string `json:"semantic_fields"`
	Structure      string   `json:"structure"`
	Roles          []string `json:"roles"`
}

// LoadFile reads and indexes the canonical verse dataset from path.
// Any failure wraps domain.ErrCorpusUnavailable: the engine must not
// serve from a partial or broken index.
func LoadFile(path string, opts LoadOptions) (*Index, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open dataset %s: %w", domain.ErrCorpusUnavailable, path, err)
	}
	defer f.Close()
	return Load(f, opts)
}

// Load reads and indexes the canonical verse dataset from r.
func Load(r io.Reader, opts LoadOptions) (*Index, error) {
	var ds dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: decode dataset: %w", domain.ErrCorpusUnavailable, err)
	}
	if len(ds.Verses) == 0 {
		return nil, fmt.Errorf("%w: dataset contains no verses", domain.ErrCorpusUnavailable)
	}
	if opts.RequireComplete && len(ds.Verses) != TotalVerses {
		return nil, fmt.Errorf("%w: dataset has %d verses, want %d",
			domain.ErrCorpusUnavailable, len(ds.Verses), TotalVerses)
	}

	verses := make([]domain.Verse, 0, len(ds.Verses))
	for _, dv := range ds.Verses {
		v, err := buildVerse(dv)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, err)
		}
		verses = append(verses, v)
	}

	// Datasets are not required to be ordered on disk.
	sort.Slice(verses, func(i, j int) bool {
		return verses[i].Address.Before(verses[j].Address)
	})

	x := &Index{
		verses:     verses,
		byAddress:  make(map[domain.VerseAddress]int, len(verses)),
		byNormText: make(map[string]int, len(verses)),
		tokenSets:  make([]map[string]struct{}, len(verses)),
		postings:   make(map[string]*roaring.Bitmap),
		aliases:    buildAliasTable(),
	}

	for i, v := range verses {
		if _, dup := x.byAddress[v.Address]; dup {
			return nil, fmt.Errorf("%w: duplicate verse %s", domain.ErrCorpusUnavailable, v.Address)
		}
		x.byAddress[v.Address] = i
		if _, taken := x.byNormText[v.Normalized]; !taken {
			x.byNormText[v.Normalized] = i
		}

		set := make(map[string]struct{}, len(v.Tokens))
		for _, t := range v.Tokens {
			set[t] = struct{}{}
			bm := x.postings[t]
			if bm == nil {
				bm = roaring.New()
				x.postings[t] = bm
			}
			bm.Add(uint32(i))
		}
		x.tokenSets[i] = set
	}

	return x, nil
}

func buildVerse(dv datasetVerse) (domain.Verse, error) {
	addr, err := domain.NewVerseAddress(dv.Surah, dv.Ayah)
	if err != nil {
		return domain.Verse{}, fmt.Errorf("verse %d:%d: %w", dv.Surah, dv.Ayah, err)
	}
	if n := AyahCount(addr.Surah); addr.Ayah > n {
		return domain.Verse{}, fmt.Errorf("verse %s: surah has only %d ayahs", addr, n)
	}
	if dv.Text == "" {
		return domain.Verse{}, fmt.Errorf("verse %s: empty text", addr)
	}
	structure := domain.StructureClass(dv.Structure)
	if dv.Structure != "" && !structure.IsValid() {
		return domain.Verse{}, fmt.Errorf("verse %s: unknown structure %q", addr, dv.Structure)
	}

	info, _ := SurahByNumber(addr.Surah)
	normalized := normalize.Text(dv.Text)

	return domain.Verse{
		Address:        addr,
		Text:           dv.Text,
		Normalized:     normalized,
		Tokens:         normalize.Tokens(normalized),
		Roots:          dv.Roots,
		Themes:         dv.Themes,
		SemanticFields: dv.SemanticFields,
		Structure:      structure,
		Roles:          dv.Roles,
		SurahNameAr:    info.NameAr,
		SurahNameEn:    info.NameEn,
	}, nil
}
