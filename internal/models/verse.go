package models

// Verse represents one addressable verse of the Gita
type Verse struct {
	Chapter   int    `json:"chapter" db:"chapter"`
	Verse     string `json:"verse" db:"verse"`
	Sanskrit  string `json:"sanskrit" db:"sanskrit"`
	Hindi     string `json:"hindi" db:"hindi"`
	English   string `json:"english" db:"english"`
	Theme     string `json:"theme" db:"theme"`
	PsychLink string `json:"psych_link" db:"psych_link"`
}

// Chapter groups the verses stored under a chapter number, in stored order
type Chapter struct {
	Number int     `json:"number"`
	Verses []Verse `json:"verses"`
}

// VerseResult is a verse augmented with related theme suggestions
type VerseResult struct {
	Verse
	Recommend     string   `json:"recommend"`
	RelatedThemes []string `json:"related_themes"`
}

// ThemesResponse is the response for a related themes lookup
type ThemesResponse struct {
	Exclude string   `json:"exclude"`
	Themes  []string `json:"themes"`
	Summary string   `json:"summary"`
}

// VoiceResponse is the response for voice capture
type VoiceResponse struct {
	Query string `json:"query"`
}
