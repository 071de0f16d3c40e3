package corpus

// Canonical corpus dimensions (Hafs/Kufan verse numbering).
const (
	TotalSurahs = 114
	TotalVerses = 6236
)

// SurahInfo is one row of the canonical surah table.
type SurahInfo struct {
	Number int    `json:"number"`
	Ayahs  int    `json:"ayahs"`
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
}

// surahs is the canonical surah table, indexed by number-1.
var surahs = [TotalSurahs]SurahInfo{
	{1, 7, "الفاتحة", "Al-Fatihah"},
	{2, 286, "البقرة", "Al-Baqarah"},
	{3, 200, "آل عمران", "Aal Imran"},
	{4, 176, "النساء", "An-Nisa"},
	{5, 120, "المائدة", "Al-Ma'idah"},
	{6, 165, "الأنعام", "Al-An'am"},
	{7, 206, "الأعراف", "Al-A'raf"},
	{8, 75, "الأنفال", "Al-Anfal"},
	{9, 129, "التوبة", "At-Tawbah"},
	{10, 109, "يونس", "Yunus"},
	{11, 123, "هود", "Hud"},
	{12, 111, "يوسف", "Yusuf"},
	{13, 43, "الرعد", "Ar-Ra'd"},
	{14, 52, "إبراهيم", "Ibrahim"},
	{15, 99, "الحجر", "Al-Hijr"},
	{16, 128, "النحل", "An-Nahl"},
	{17, 111, "الإسراء", "Al-Isra"},
	{18, 110, "الكهف", "Al-Kahf"},
	{19, 98, "مريم", "Maryam"},
	{20, 135, "طه", "Taha"},
	{21, 112, "الأنبياء", "Al-Anbiya"},
	{22, 78, "الحج", "Al-Hajj"},
	{23, 118, "المؤمنون", "Al-Mu'minun"},
	{24, 64, "النور", "An-Nur"},
	{25, 77, "الفرقان", "Al-Furqan"},
	{26, 227, "الشعراء", "Ash-Shu'ara"},
	{27, 93, "النمل", "An-Naml"},
	{28, 88, "القصص", "Al-Qasas"},
	{29, 69, "العنكبوت", "Al-Ankabut"},
	{30, 60, "الروم", "Ar-Rum"},
	{31, 34, "لقمان", "Luqman"},
	{32, 30, "السجدة", "As-Sajdah"},
	{33, 73, "الأحزاب", "Al-Ahzab"},
	{34, 54, "سبأ", "Saba"},
	{35, 45, "فاطر", "Fatir"},
	{36, 83, "يس", "Ya-Sin"},
	{37, 182, "الصافات", "As-Saffat"},
	{38, 88, "ص", "Sad"},
	{39, 75, "الزمر", "Az-Zumar"},
	{40, 85, "غافر", "Ghafir"},
	{41, 54, "فصلت", "Fussilat"},
	{42, 53, "الشورى", "Ash-Shura"},
	{43, 89, "الزخرف", "Az-Zukhruf"},
	{44, 59, "الدخان", "Ad-Dukhan"},
	{45, 37, "الجاثية", "Al-Jathiyah"},
	{46, 35, "الأحقاف", "Al-Ahqaf"},
	{47, 38, "محمد", "Muhammad"},
	{48, 29, "الفتح", "Al-Fath"},
	{49, 18, "الحجرات", "Al-Hujurat"},
	{50, 45, "ق", "Qaf"},
	{51, 60, "الذاريات", "Adh-Dhariyat"},
	{52, 49, "الطور", "At-Tur"},
	{53, 62, "النجم", "An-Najm"},
	{54, 55, "القمر", "Al-Qamar"},
	{55, 78, "الرحمن", "Ar-Rahman"},
	{56, 96, "الواقعة", "Al-Waqi'ah"},
	{57, 29, "الحديد", "Al-Hadid"},
	{58, 22, "المجادلة", "Al-Mujadilah"},
	{59, 24, "الحشر", "Al-Hashr"},
	{60, 13, "الممتحنة", "Al-Mumtahanah"},
	{61, 14, "الصف", "As-Saff"},
	{62, 11, "الجمعة", "Al-Jumu'ah"},
	{63, 11, "المنافقون", "Al-Munafiqun"},
	{64, 18, "التغابن", "At-Taghabun"},
	{65, 12, "الطلاق", "At-Talaq"},
	{66, 12, "التحريم", "At-Tahrim"},
	{67, 30, "الملك", "Al-Mulk"},
	{68, 52, "القلم", "Al-Qalam"},
	{69, 52, "الحاقة", "Al-Haqqah"},
	{70, 44, "المعارج", "Al-Ma'arij"},
	{71, 28, "نوح", "Nuh"},
	{72, 28, "الجن", "Al-Jinn"},
	{73, 20, "المزمل", "Al-Muzzammil"},
	{74, 56, "المدثر", "Al-Muddaththir"},
	{75, 40, "القيامة", "Al-Qiyamah"},
	{76, 31, "الإنسان", "Al-Insan"},
	{77, 50, "المرسلات", "Al-Mursalat"},
	{78, 40, "النبأ", "An-Naba"},
	{79, 46, "النازعات", "An-Nazi'at"},
	{80, 42, "عبس", "Abasa"},
	{81, 29, "التكوير", "At-Takwir"},
	{82, 19, "الانفطار", "Al-Infitar"},
	{83, 36, "المطففين", "Al-Mutaffifin"},
	{84, 25, "الانشقاق", "Al-Inshiqaq"},
	{85, 22, "البروج", "Al-Buruj"},
	{86, 17, "الطارق", "At-Tariq"},
	{87, 19, "الأعلى", "Al-A'la"},
	{88, 26, "الغاشية", "Al-Ghashiyah"},
	{89, 30, "الفجر", "Al-Fajr"},
	{90, 20, "البلد", "Al-Balad"},
	{91, 15, "الشمس", "Ash-Shams"},
	{92, 21, "الليل", "Al-Layl"},
	{93, 11, "الضحى", "Ad-Duha"},
	{94, 8, "الشرح", "Ash-Sharh"},
	{95, 8, "التين", "At-Tin"},
	{96, 19, "العلق", "Al-Alaq"},
	{97, 5, "القدر", "Al-Qadr"},
	{98, 8, "البينة", "Al-Bayyinah"},
	{99, 8, "الزلزلة", "Az-Zalzalah"},
	{100, 11, "العاديات", "Al-Adiyat"},
	{101, 11, "القارعة", "Al-Qari'ah"},
	{102, 8, "التكاثر", "At-Takathur"},
	{103, 3, "العصر", "Al-Asr"},
	{104, 9, "الهمزة", "Al-Humazah"},
	{105, 5, "الفيل", "Al-Fil"},
	{106, 4, "قريش", "Quraysh"},
	{107, 7, "الماعون", "Al-Ma'un"},
	{108, 3, "الكوثر", "Al-Kawthar"},
	{109, 6, "الكافرون", "Al-Kafirun"},
	{110, 3, "النصر", "An-Nasr"},
	{111, 5, "المسد", "Al-Masad"},
	{112, 4, "الإخلاص", "Al-Ikhlas"},
	{113, 5, "الفلق", "Al-Falaq"},
	{114, 6, "الناس", "An-Nas"},
}

// Surahs returns the canonical surah table in order.
func Surahs() []SurahInfo {
	out := make([]SurahInfo, TotalSurahs)
	copy(out, surahs[:])
	return out
}

// SurahByNumber returns the canonical surah row for n (1..114).
func SurahByNumber(n int) (SurahInfo, bool) {
	if n < 1 || n > TotalSurahs {
		return SurahInfo{}, false
	}
	return surahs[n-1], true
}

// AyahCount returns the canonical verse count of surah n, or 0 when n
// is out of range.
func AyahCount(n int) int {
	if n < 1 || n > TotalSurahs {
		return 0
	}
	return surahs[n-1].Ayahs
}
