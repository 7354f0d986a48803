package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"adventurelane/entity"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

type Repo interface {
	ListExperiences(ctx context.Context) ([]entity.Experience, error)
	GetExperience(ctx context.Context, id string) (entity.Experience, error)
	ListSlots(ctx context.Context, experienceID string) ([]entity.Slot, error)
}

type Cache interface {
	Get(ctx context.Context, experienceID string) (Details, bool, error)
	Set(ctx context.Context, details Details) error
}

type Details struct {
	Experience entity.Experience `json:"experience"`
	Slots      []entity.Slot     `json:"slots"`
}

type Catalog struct {
	repo  Repo
	cache Cache
}

// New returns a Catalog. A nil cache disables caching of details.
func New(repo Repo, cache Cache) Catalog {
	return Catalog{
		repo:  repo,
		cache: cache,
	}
}

func (c Catalog) ListExperiences(ctx context.Context) ([]entity.Experience, error) {
	experiences, err := c.repo.ListExperiences(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing experiences: %w", err)
	}

	return experiences, nil
}

func (c Catalog) GetExperience(ctx context.Context, id string) (entity.Experience, error) {
	experience, err := c.repo.GetExperience(ctx, id)
	if err != nil {
		return entity.Experience{}, fmt.Errorf("getting experience %s: %w", id, err)
	}

	return experience, nil
}

func (c Catalog) ListSlots(ctx context.Context, experienceID string) ([]entity.Slot, error) {
	slots, err := c.repo.ListSlots(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("listing slots of experience %s: %w", experienceID, err)
	}

	SortSlots(slots)
	return slots, nil
}

func (c Catalog) Details(ctx context.Context, experienceID string) (Details, error) {
	logger := log.FromContext(ctx).WithField("experience_id", experienceID)

	if c.cache != nil {
		details, ok, err := c.cache.Get(ctx, experienceID)
		if err != nil {
			logger.WithError(err).Warn("Failed to read experience details from cache")
		}
		if ok {
			return details, nil
		}
	}

	experience, err := c.GetExperience(ctx, experienceID)
	if err != nil {
		return Details{}, err
	}

	slots, err := c.ListSlots(ctx, experienceID)
	if err != nil {
		return Details{}, err
	}

	details := Details{
		Experience: experience,
		Slots:      slots,
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, details); err != nil {
			logger.WithError(err).Warn("Failed to cache experience details")
		}
	}

	return details, nil
}

// SortSlots orders slots by date, then by time of day.
func SortSlots(slots []entity.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Time < slots[j].Time
	})
}

// SearchExperiences keeps the experiences whose title, location or category
// contains the query, ignoring case.
func SearchExperiences(query string, experiences []entity.Experience) []entity.Experience {
	q := strings.ToLower(query)
	if q == "" {
		return experiences
	}

	filtered := make([]entity.Experience, 0, len(experiences))
	for _, e := range experiences {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Location), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
