package services

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"trailhead/internal/domain"
	"trailhead/internal/repos"
)

type CatalogService struct {
	Dests *repos.DestinationRepo
}

func NewCatalogService(dests *repos.DestinationRepo) *CatalogService {
	return &CatalogService{Dests: dests}
}

// Browse returns the available destinations matching the filter. An empty
// result set is a normal outcome, not an error.
func (s *CatalogService) Browse(f domain.SearchFilter) ([]domain.DestinationSummary, error) {
	if f.Difficulty != "" && !domain.Difficulty(f.Difficulty).Valid() {
		return nil, domain.Invalid("difficulty must be one of Beginner, Easy, Moderate, Difficult, Extreme")
	}
	return s.Dests.Find(f)
}

func (s *CatalogService) GetBySlug(slug string) (domain.Destination, error) {
	return s.Dests.GetBySlug(slug)
}

func validateListing(d domain.Destination) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return domain.Invalid("title is required")
	case strings.TrimSpace(d.Location) == "":
		return domain.Invalid("location is required")
	case strings.TrimSpace(d.Category) == "":
		return domain.Invalid("category is required")
	case d.Price < 0:
		return domain.Invalid("price must not be negative")
	case d.Difficulty != "" && !d.Difficulty.Valid():
		return domain.Invalid("difficulty must be one of Beginner, Easy, Moderate, Difficult, Extreme")
	case d.Rating < 0 || d.Rating > 5:
		return domain.Invalid("rating must be between 0 and 5")
	}
	return nil
}

// Create adds a catalog listing. The slug must be unique and is immutable
// afterwards.
func (s *CatalogService) Create(d domain.Destination) (domain.Destination, error) {
	if strings.TrimSpace(d.Slug) == "" {
		return domain.Destination{}, domain.Invalid("slug is required")
	}
	if err := validateListing(d); err != nil {
		return domain.Destination{}, err
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if err := s.Dests.Insert(d); err != nil {
		return domain.Destination{}, err
	}
	return s.Dests.GetBySlug(d.Slug)
}

// Update applies a partial JSON patch over the stored listing. Identity
// fields (id, slug, createdAt) are preserved regardless of the patch.
func (s *CatalogService) Update(id string, patch []byte) (domain.Destination, error) {
	d, err := s.Dests.GetByID(id)
	if err != nil {
		return domain.Destination{}, err
	}
	keepSlug, keepCreated := d.Slug, d.CreatedAt
	if err := json.Unmarshal(patch, &d); err != nil {
		return domain.Destination{}, domain.Invalid("malformed destination payload")
	}
	d.ID, d.Slug, d.CreatedAt = id, keepSlug, keepCreated
	if err := validateListing(d); err != nil {
		return domain.Destination{}, err
	}
	if err := s.Dests.Update(d); err != nil {
		return domain.Destination{}, err
	}
	return s.Dests.GetByID(id)
}
