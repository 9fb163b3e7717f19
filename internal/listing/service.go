package listing

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// Service provides catalog browsing and listing submission.
type Service struct {
	store    Store
	seed     []Listing
	now      func() time.Time
	validate *validator.Validate
}

// NewService creates a new listing service backed by the given store.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		seed:     Seed(),
		now:      time.Now,
		validate: validator.New(),
	}
}

// Merge combines the seed catalog with the persisted user records, seed
// first, both in their own order. Pure; inputs are not modified.
func Merge(seed, persisted []Listing) []Listing {
	out := make([]Listing, 0, len(seed)+len(persisted))
	out = append(out, seed...)
	out = append(out, persisted...)
	return out
}

// Catalog returns the full merged catalog. A store failure degrades to
// the seed records alone; it is logged but never surfaced.
func (s *Service) Catalog(ctx context.Context) []Listing {
	persisted, err := s.store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog store unavailable, serving seed only")
		return Merge(s.seed, nil)
	}
	return Merge(s.seed, persisted)
}

// List returns the catalog records matching q, in catalog order, together
// with the filter facets of the full (unfiltered) catalog.
func (s *Service) List(ctx context.Context, q Query) ([]Listing, Facets) {
	catalog := s.Catalog(ctx)
	return Filter(catalog, q), DeriveFacets(catalog)
}

// Get returns the catalog record with the given id.
func (s *Service) Get(ctx context.Context, id string) (Listing, error) {
	for _, l := range s.Catalog(ctx) {
		if l.ID == id {
			return l, nil
		}
	}
	return Listing{}, ErrNotFound
}

// Submission is the raw form input for a new listing. Every field arrives
// as a string, price included.
type Submission struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Semester    string `json:"semester"`
	Condition   string `json:"condition" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
	Seller      string `json:"seller" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Image       string `json:"image"`
	WhatsApp    string `json:"whatsapp" validate:"required"`
}

// Create validates sub, builds the listing record and appends it to the
// store. Missing required fields return validator.ValidationErrors; a
// price that does not parse as a non-negative number returns
// ErrInvalidPrice.
func (s *Service) Create(ctx context.Context, sub Submission) (Listing, error) {
	if err := s.validate.Struct(sub); err != nil {
		return Listing{}, err
	}

	price, err := strconv.ParseFloat(sub.Price, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return Listing{}, fmt.Errorf("%w: %q", ErrInvalidPrice, sub.Price)
	}

	image := sub.Image
	if image == "" {
		image = placeholderImage(sub.Title)
	}

	l := Listing{
		ID:          s.nextID(s.Catalog(ctx)),
		Title:       sub.Title,
		Author:      sub.Author,
		Subject:     sub.Subject,
		Semester:    sub.Semester,
		Condition:   sub.Condition,
		Price:       price,
		Image:       image,
		Seller:      sub.Seller,
		Rating:      DefaultRating,
		Location:    sub.Location,
		WhatsApp:    sub.WhatsApp,
		Description: sub.Description,
	}

	if err := s.store.Append(ctx, l); err != nil {
		return Listing{}, fmt.Errorf("append listing: %w", err)
	}

	log.Info().Str("id", l.ID).Str("title", l.Title).Msg("listing created")
	return l, nil
}

// nextID derives a millisecond-timestamp id, bumping it while it collides
// with an existing catalog id. Back-to-back submissions inside the same
// millisecond stay unique under the single-writer assumption.
func (s *Service) nextID(catalog []Listing) string {
	taken := make(map[string]bool, len(catalog))
	for _, l := range catalog {
		taken[l.ID] = true
	}
	for n := s.now().UnixMilli(); ; n++ {
		id := strconv.FormatInt(n, 10)
		if !taken[id] {
			return id
		}
	}
}

func placeholderImage(title string) string {
	if title == "" {
		title = "textbook"
	}
	return "/placeholder.svg?height=200&width=150&query=" + url.QueryEscape(title)
}
