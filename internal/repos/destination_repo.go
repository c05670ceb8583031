package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"trailhead/internal/domain"
)

type DestinationRepo struct{ db *sqlx.DB }

func NewDestinationRepo(db *sqlx.DB) *DestinationRepo { return &DestinationRepo{db: db} }

// summaryCols is the reduced column list for list-shaped responses:
// long_description, itinerary, what_to_bring and safety stay out.
const summaryCols = `
  id, slug, title, location, price, original_price, discount_percent,
  images_json, description, duration, group_size, difficulty, rating,
  review_count, category, season, age_limit, languages_json, highlights_json,
  includes_json, excludes_json, featured, available,
  created_at, COALESCE(updated_at,'') AS updated_at`

const fullCols = `
  id, slug, title, location, price, original_price, discount_percent,
  images_json, description, long_description, duration, group_size,
  difficulty, rating, review_count, category, season, age_limit,
  languages_json, highlights_json, includes_json, excludes_json,
  itinerary_json, what_to_bring_json, safety_json, featured, available,
  created_at, COALESCE(updated_at,'') AS updated_at`

type destSummaryRow struct {
	ID              string `db:"id"`
	Slug            string `db:"slug"`
	Title           string `db:"title"`
	Location        string `db:"location"`
	Price           int64  `db:"price"`
	OriginalPrice   *int64 `db:"original_price"`
	DiscountPercent *int   `db:"discount_percent"`
	ImagesJSON      string `db:"images_json"`
	Description     string `db:"description"`
	Duration        string `db:"duration"`
	GroupSize       string `db:"group_size"`
	Difficulty      string `db:"difficulty"`
	Rating          float64 `db:"rating"`
	ReviewCount     int    `db:"review_count"`
	Category        string `db:"category"`
	Season          string `db:"season"`
	AgeLimit        string `db:"age_limit"`
	LanguagesJSON   string `db:"languages_json"`
	HighlightsJSON  string `db:"highlights_json"`
	IncludesJSON    string `db:"includes_json"`
	ExcludesJSON    string `db:"excludes_json"`
	Featured        bool   `db:"featured"`
	Available       bool   `db:"available"`
	CreatedAt       string `db:"created_at"`
	UpdatedAt       string `db:"updated_at"`
}

type destRow struct {
	destSummaryRow
	LongDescription string `db:"long_description"`
	ItineraryJSON   string `db:"itinerary_json"`
	WhatToBringJSON string `db:"what_to_bring_json"`
	SafetyJSON      string `db:"safety_json"`
}

func fromJSON[T any](s string) []T {
	if s == "" {
		return nil
	}
	var v []T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil
	}
	return v
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return "[]"
	}
	return string(b)
}

func (r destSummaryRow) summary() domain.DestinationSummary {
	return domain.DestinationSummary{
		ID: r.ID, Slug: r.Slug, Title: r.Title, Location: r.Location,
		Price: r.Price, OriginalPrice: r.OriginalPrice, DiscountPercent: r.DiscountPercent,
		Images:      fromJSON[domain.Image](r.ImagesJSON),
		Description: r.Description, Duration: r.Duration, GroupSize: r.GroupSize,
		Difficulty: domain.Difficulty(r.Difficulty), Rating: r.Rating, ReviewCount: r.ReviewCount,
		Category: r.Category, Season: r.Season, AgeLimit: r.AgeLimit,
		Languages:  fromJSON[string](r.LanguagesJSON),
		Highlights: fromJSON[domain.Highlight](r.HighlightsJSON),
		Includes:   fromJSON[domain.ListItem](r.IncludesJSON),
		Excludes:   fromJSON[domain.ListItem](r.ExcludesJSON),
		Featured:   r.Featured, Available: r.Available,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

func (r destRow) destination() domain.Destination {
	s := r.summary()
	return domain.Destination{
		ID: s.ID, Slug: s.Slug, Title: s.Title, Location: s.Location,
		Price: s.Price, OriginalPrice: s.OriginalPrice, DiscountPercent: s.DiscountPercent,
		Images: s.Images, Description: s.Description,
		LongDescription: r.LongDescription,
		Duration:        s.Duration, GroupSize: s.GroupSize,
		Difficulty: s.Difficulty, Rating: s.Rating, ReviewCount: s.ReviewCount,
		Category: s.Category, Season: s.Season, AgeLimit: s.AgeLimit,
		Languages: s.Languages, Highlights: s.Highlights,
		Includes: s.Includes, Excludes: s.Excludes,
		Itinerary:   fromJSON[domain.ItineraryStop](r.ItineraryJSON),
		WhatToBring: fromJSON[domain.ListItem](r.WhatToBringJSON),
		Safety:      fromJSON[domain.SafetyMeasure](r.SafetyJSON),
		Featured:    s.Featured, Available: s.Available,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

// Find returns available destinations matching the filter. Ranked filters
// order by rating first; otherwise newest first, ties broken by insertion
// recency (rowid).
func (r *DestinationRepo) Find(f domain.SearchFilter) ([]domain.DestinationSummary, error) {
	where := `available = 1`
	args := []any{}

	if f.Query != "" {
		q := "%" + strings.ToLower(f.Query) + "%"
		where += ` AND (LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?
		  OR EXISTS (SELECT 1 FROM json_each(destinations.highlights_json)
		             WHERE LOWER(json_extract(json_each.value,'$.text')) LIKE ?))`
		args = append(args, q, q, q, q)
	}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Difficulty != "" {
		where += ` AND difficulty = ?`
		args = append(args, f.Difficulty)
	}
	if f.Featured != nil {
		where += ` AND featured = ?`
		args = append(args, *f.Featured)
	}
	if f.MinPrice != nil {
		where += ` AND price >= ?`
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where += ` AND price <= ?`
		args = append(args, *f.MaxPrice)
	}
	if f.MinRating != nil {
		where += ` AND rating >= ?`
		args = append(args, *f.MinRating)
	}

	order := `datetime(created_at) DESC, rowid DESC`
	if f.Ranked() {
		order = `rating DESC, ` + order
	}

	var rows []destSummaryRow
	err := r.db.Select(&rows, `SELECT `+summaryCols+` FROM destinations WHERE `+where+` ORDER BY `+order, args...)
	if err != nil {
		return nil, err
	}
	out := make([]domain.DestinationSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.summary())
	}
	return out, nil
}

func (r *DestinationRepo) GetBySlug(slug string) (domain.Destination, error) {
	var row destRow
	err := r.db.Get(&row, `SELECT `+fullCols+` FROM destinations WHERE slug = ?`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Destination{}, domain.ErrDestinationNotFound
	}
	if err != nil {
		return domain.Destination{}, err
	}
	return row.destination(), nil
}

func (r *DestinationRepo) GetByID(id string) (domain.Destination, error) {
	var row destRow
	err := r.db.Get(&row, `SELECT `+fullCols+` FROM destinations WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Destination{}, domain.ErrDestinationNotFound
	}
	if err != nil {
		return domain.Destination{}, err
	}
	return row.destination(), nil
}

// insertDestination is shared by Insert and the startup seed.
func insertDestination(e sqlx.Ext, d domain.Destination) error {
	_, err := e.Exec(`
	  INSERT INTO destinations(
	    id, slug, title, location, price, original_price, discount_percent,
	    images_json, description, long_description, duration, group_size,
	    difficulty, rating, review_count, category, season, age_limit,
	    languages_json, highlights_json, includes_json, excludes_json,
	    itinerary_json, what_to_bring_json, safety_json, featured, available,
	    created_at
	  ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, d.ID, d.Slug, d.Title, d.Location, d.Price, d.OriginalPrice, d.DiscountPercent,
		toJSON(d.Images), d.Description, d.LongDescription, d.Duration, d.GroupSize,
		string(d.Difficulty), d.Rating, d.ReviewCount, d.Category, d.Season, d.AgeLimit,
		toJSON(d.Languages), toJSON(d.Highlights), toJSON(d.Includes), toJSON(d.Excludes),
		toJSON(d.Itinerary), toJSON(d.WhatToBring), toJSON(d.Safety), d.Featured, d.Available)
	return err
}

func (r *DestinationRepo) Insert(d domain.Destination) error {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM destinations WHERE slug = ?`, d.Slug); err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrSlugTaken
	}
	return insertDestination(r.db, d)
}

// Update rewrites every mutable column; id, slug and created_at never change.
func (r *DestinationRepo) Update(d domain.Destination) error {
	res, err := r.db.Exec(`
	  UPDATE destinations SET
	    title = ?, location = ?, price = ?, original_price = ?, discount_percent = ?,
	    images_json = ?, description = ?, long_description = ?, duration = ?,
	    group_size = ?, difficulty = ?, rating = ?, review_count = ?, category = ?,
	    season = ?, age_limit = ?, languages_json = ?, highlights_json = ?,
	    includes_json = ?, excludes_json = ?, itinerary_json = ?,
	    what_to_bring_json = ?, safety_json = ?, featured = ?, available = ?,
	    updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, d.Title, d.Location, d.Price, d.OriginalPrice, d.DiscountPercent,
		toJSON(d.Images), d.Description, d.LongDescription, d.Duration,
		d.GroupSize, string(d.Difficulty), d.Rating, d.ReviewCount, d.Category,
		d.Season, d.AgeLimit, toJSON(d.Languages), toJSON(d.Highlights),
		toJSON(d.Includes), toJSON(d.Excludes), toJSON(d.Itinerary),
		toJSON(d.WhatToBring), toJSON(d.Safety), d.Featured, d.Available, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDestinationNotFound
	}
	return nil
}
