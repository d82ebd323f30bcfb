package entity

// HadithBook is one collection available from the hadith CDN, keyed by the
// slug used in edition names (e.g. "bukhari" for eng-bukhari / ara-bukhari).
type HadithBook struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	HadithCount  int    `json:"hadith_count,omitempty"`
	SectionCount int    `json:"section_count,omitempty"`
}

// Hadith is a single narration. Arabic may be empty when the collection has
// no Arabic edition on the CDN.
type Hadith struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Arabic  string   `json:"arabic,omitempty"`
	Grades  []string `json:"grades,omitempty"`
	Section string   `json:"section,omitempty"`
}

// HadithPage is one page of a collection listing.
type HadithPage struct {
	Book     string   `json:"book"`
	BookName string   `json:"book_name"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Total    int      `json:"total"`
	Hadiths  []Hadith `json:"hadiths"`
}
