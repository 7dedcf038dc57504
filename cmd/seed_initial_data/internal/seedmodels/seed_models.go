package seedmodels

// SeedWord defines the structure for a word item in the JSON seed file.
type SeedWord struct {
	Text         string `json:"text"`
	Meaning      string `json:"meaning"`
	Phonetic     string `json:"phonetic"`
	PartOfSpeech string `json:"part_of_speech"`
	Example      string `json:"example"`
}

// SeedCategory defines the structure for a category in the JSON seed file.
type SeedCategory struct {
	Name        string     `json:"category_name"`
	Description string     `json:"category_description"`
	Words       []SeedWord `json:"words"`
}
