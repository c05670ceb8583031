package domain

// SearchFilter holds the optional catalog criteria. All present criteria are
// combined with AND; the text query is itself an OR across title, location,
// description and highlight texts. Availability is enforced unconditionally.
type SearchFilter struct {
	Query      string
	Category   string
	Difficulty string
	Featured   *bool
	MinPrice   *int64
	MaxPrice   *int64
	MinRating  *float64
}

// Ranked reports whether results should be ordered by rating before recency.
// Plain listings (category/difficulty/featured only) stay in recency order.
func (f SearchFilter) Ranked() bool {
	return f.Query != "" || f.MinPrice != nil || f.MaxPrice != nil || f.MinRating != nil
}
