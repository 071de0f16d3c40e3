package corpus

import (
	"strings"

	"github.com/ayatlab/verseref/internal/normalize"
)

// articlePrefixes are the assimilated forms of the Arabic definite
// article as it appears in transliterated surah names.
var articlePrefixes = []string{
	"al-", "ar-", "as-", "ash-", "at-", "ad-", "adh-", "an-", "az-", "aal ",
}

// extraAliases holds curated spelling variants and traditional
// alternative names that cannot be derived from the canonical table.
var extraAliases = map[string]int{
	"fatiha":       1,
	"fateha":       1,
	"baqara":       2,
	"bakara":       2,
	"ali imran":    3,
	"al imran":     3,
	"imraan":       3,
	"maida":        5,
	"maidah":       5,
	"anaam":        6,
	"araaf":        7,
	"tawba":        9,
	"tauba":        9,
	"taubah":       9,
	"bani israil":  17, // traditional alternative name of Al-Isra
	"بني إسرائيل":  17,
	"kahaf":        18,
	"ta-ha":        20,
	"ta ha":        20,
	"hajj":         22,
	"muminun":      23,
	"muminoon":     23,
	"noor":         24,
	"nur":          24,
	"shuara":       26,
	"ankaboot":     29,
	"rum":          30,
	"room":         30,
	"sajda":        32,
	"yaseen":       36,
	"yasin":        36,
	"ya sin":       36,
	"zumar":        39,
	"mumin":        40, // traditional alternative name of Ghafir
	"المؤمن":       40,
	"ha mim sajda": 41, // traditional alternative name of Fussilat
	"shura":        42,
	"dukhan":       44,
	"jathiya":      45,
	"fath":         48,
	"hujurat":      49,
	"dhariyat":     51,
	"zariyat":      51,
	"najm":         53,
	"qamar":        54,
	"rahman":       55,
	"rehman":       55,
	"waqia":        56,
	"waqiah":       56,
	"mujadila":     58,
	"saf":          61,
	"jumua":        62,
	"jumuah":       62,
	"juma":         62,
	"munafiqun":    63,
	"munafiqoon":   63,
	"mulk":         67,
	"haqqa":        69,
	"maarij":       70,
	"nooh":         71,
	"muzammil":     73,
	"mudathir":     74,
	"muddathir":    74,
	"qiyama":       75,
	"qiyamah":      75,
	"dahr":         76, // traditional alternative name of Al-Insan
	"الدهر":        76,
	"insan":        76,
	"naba":         78,
	"amma":         78, // juz-name commonly used for An-Naba
	"naziat":       79,
	"takwir":       81,
	"infitar":      82,
	"mutaffifin":   83,
	"tatfif":       83,
	"inshiqaq":     84,
	"buruj":        85,
	"tariq":        86,
	"ala":          87,
	"ghashiya":     88,
	"fajr":         89,
	"balad":        90,
	"shams":        91,
	"layl":         92,
	"lail":         92,
	"duha":         93,
	"dhuha":        93,
	"inshirah":     94, // traditional alternative name of Ash-Sharh
	"alam nashrah": 94,
	"tin":          95,
	"teen":         95,
	"alaq":         96,
	"iqra":         96,
	"qadr":         97,
	"bayyina":      98,
	"zalzala":      99,
	"zilzal":       99,
	"adiyat":       100,
	"qaria":        101,
	"takathur":     102,
	"asr":          103,
	"humaza":       104,
	"fil":          105,
	"feel":         105,
	"quraish":      106,
	"maun":         107,
	"kawthar":      108,
	"kausar":       108,
	"kafirun":      109,
	"kafiroon":     109,
	"nasr":         110,
	"masad":        111,
	"lahab":        111, // traditional alternative name of Al-Masad
	"اللهب":        111,
	"ikhlas":       112,
	"ikhlaas":      112,
	"falaq":        113,
	"nas":          114,
	"naas":         114,
}

// buildAliasTable derives the full alias map (normalized alias key →
// surah number) from the canonical table plus curated extras. Derived
// forms per surah: the Arabic name, the Arabic name without the «ال»
// article, the transliteration, the transliteration without its
// article, and apostrophe-free variants of each.
func buildAliasTable() map[string]int {
	aliases := make(map[string]int, 6*TotalSurahs)

	add := func(raw string, n int) {
		key := normalize.Key(raw)
		if key == "" {
			return
		}
		// First writer wins so canonical names beat derived variants.
		if _, exists := aliases[key]; !exists {
			aliases[key] = n
		}
	}

	for _, s := range surahs {
		add(s.NameAr, s.Number)
		if bare, ok := strings.CutPrefix(normalize.Key(s.NameAr), "ال"); ok {
			add(bare, s.Number)
		}

		en := strings.ToLower(s.NameEn)
		add(en, s.Number)
		add(strings.ReplaceAll(en, "'", ""), s.Number)
		if bare := stripArticle(en); bare != en {
			add(bare, s.Number)
			add(strings.ReplaceAll(bare, "'", ""), s.Number)
		}
	}

	for raw, n := range extraAliases {
		add(raw, n)
	}

	return aliases
}

// stripArticle removes a leading assimilated-article prefix from a
// lowercase transliterated name.
func stripArticle(name string) string {
	for _, p := range articlePrefixes {
		if rest, ok := strings.CutPrefix(name, p); ok && rest != "" {
			return rest
		}
	}
	return name
}
