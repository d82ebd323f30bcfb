package entity

// Surah is the metadata for one chapter of the Quran.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"` // Arabic name.
	EnglishName            string `json:"english_name"`
	EnglishNameTranslation string `json:"english_name_translation"`
	NumberOfAyahs          int    `json:"number_of_ayahs"`
	RevelationType         string `json:"revelation_type"` // "Meccan" or "Medinan".
}

// Ayah is a single verse in a specific edition.
type Ayah struct {
	Number        int    `json:"number"` // Global ayah number, 1..6236.
	NumberInSurah int    `json:"number_in_surah"`
	Text          string `json:"text"`
	Juz           int    `json:"juz,omitempty"`
	Page          int    `json:"page,omitempty"`
}

// SurahText is one full chapter in a single edition.
type SurahText struct {
	Surah
	Edition string `json:"edition"`
	Ayahs   []Ayah `json:"ayahs"`
}

// VersePair is one ayah with its Arabic text and a translation, paired by
// position after both edition fetches resolve.
type VersePair struct {
	NumberInSurah int    `json:"number_in_surah"`
	Arabic        string `json:"arabic"`
	Translation   string `json:"translation"`
}

// SurahWithTranslation is a chapter rendered for reading: Arabic text plus
// a chosen translation edition side by side.
type SurahWithTranslation struct {
	Surah
	TranslationEdition string      `json:"translation_edition"`
	Verses             []VersePair `json:"verses"`
}

// SearchMatch is one hit from a Quran text search.
type SearchMatch struct {
	Surah         int    `json:"surah"`
	SurahName     string `json:"surah_name"`
	NumberInSurah int    `json:"number_in_surah"`
	Text          string `json:"text"`
	Edition       string `json:"edition"`
}
