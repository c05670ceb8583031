package domain

type Difficulty string

const (
	DifficultyBeginner  Difficulty = "Beginner"
	DifficultyEasy      Difficulty = "Easy"
	DifficultyModerate  Difficulty = "Moderate"
	DifficultyDifficult Difficulty = "Difficult"
	DifficultyExtreme   Difficulty = "Extreme"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyEasy, DifficultyModerate, DifficultyDifficult, DifficultyExtreme:
		return true
	}
	return false
}

type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

type Highlight struct {
	Text string `json:"text"`
}

type ListItem struct {
	Item string `json:"item"`
}

type ItineraryStop struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description,omitempty"`
}

type SafetyMeasure struct {
	Measure string `json:"measure"`
}

// Destination is the full catalog entity, returned only by single-item lookup.
type Destination struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	Location        string          `json:"location"`
	Price           int64           `json:"price"`
	OriginalPrice   *int64          `json:"originalPrice,omitempty"`
	DiscountPercent *int            `json:"discountPercent,omitempty"`
	Images          []Image         `json:"images"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription,omitempty"`
	Duration        string          `json:"duration,omitempty"`
	GroupSize       string          `json:"groupSize,omitempty"` // advisory, e.g. "2-8 people"
	Difficulty      Difficulty      `json:"difficulty"`
	Rating          float64         `json:"rating"`
	ReviewCount     int             `json:"reviewCount"`
	Category        string          `json:"category"`
	Season          string          `json:"season,omitempty"`
	AgeLimit        string          `json:"ageLimit,omitempty"`
	Languages       []string        `json:"languages,omitempty"`
	Highlights      []Highlight     `json:"highlights,omitempty"`
	Includes        []ListItem      `json:"includes,omitempty"`
	Excludes        []ListItem      `json:"excludes,omitempty"`
	Itinerary       []ItineraryStop `json:"itinerary,omitempty"`
	WhatToBring     []ListItem      `json:"whatToBring,omitempty"`
	Safety          []SafetyMeasure `json:"safety,omitempty"`
	Featured        bool            `json:"featured"`
	Available       bool            `json:"available"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
}

// DestinationSummary is the list-shaped projection: longDescription,
// itinerary, whatToBring and safety never appear here.
type DestinationSummary struct {
	ID              string      `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Location        string      `json:"location"`
	Price           int64       `json:"price"`
	OriginalPrice   *int64      `json:"originalPrice,omitempty"`
	DiscountPercent *int        `json:"discountPercent,omitempty"`
	Images          []Image     `json:"images"`
	Description     string      `json:"description"`
	Duration        string      `json:"duration,omitempty"`
	GroupSize       string      `json:"groupSize,omitempty"`
	Difficulty      Difficulty  `json:"difficulty"`
	Rating          float64     `json:"rating"`
	ReviewCount     int         `json:"reviewCount"`
	Category        string      `json:"category"`
	Season          string      `json:"season,omitempty"`
	AgeLimit        string      `json:"ageLimit,omitempty"`
	Languages       []string    `json:"languages,omitempty"`
	Highlights      []Highlight `json:"highlights,omitempty"`
	Includes        []ListItem  `json:"includes,omitempty"`
	Excludes        []ListItem  `json:"excludes,omitempty"`
	Featured        bool        `json:"featured"`
	Available       bool        `json:"available"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// DestinationRef is the projection joined onto booking responses.
type DestinationRef struct {
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Images   []Image `json:"images"`
	Price    int64   `json:"price"`
}
