package recommend

import (
	"sort"
	"strings"

	"github.com/ahmed9194/Complete-Implementation-Plan-for-Knowledge-Based-Restaurant-Recommender-System/internal/dataset"
)

// MaxResults caps every recommendation response.
const MaxResults = 10

type Repository interface {
	All() dataset.Table
	Cuisines() []string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ready reports whether a non-empty table is loaded. When false the system
// has nothing to recommend and handlers answer 503.
func (s *Service) Ready() bool {
	return len(s.repo.All()) > 0
}

func (s *Service) Cuisines() []string {
	return s.repo.Cuisines()
}

// --------------------------------------------------
// Recommend
// --------------------------------------------------
// Recommend narrows the loaded table by the given preferences and returns at
// most MaxResults records sorted by rating, ties broken by votes, best
// first. It is a pure transformation: the source table is never modified and
// identical inputs always produce identical output.
func (s *Service) Recommend(prefs Preferences) []dataset.Restaurant {
	tags := make([]string, 0, len(prefs.Cuisines))
	for _, t := range prefs.Cuisines {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}

	var results []dataset.Restaurant
	for _, r := range s.repo.All() {
		if len(tags) > 0 && !matchesAny(r.Cuisines, tags) {
			continue
		}
		if prefs.MinRating != nil && r.Rating < *prefs.MinRating {
			continue
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Rating != results[j].Rating {
			return results[i].Rating > results[j].Rating
		}
		return results[i].Votes > results[j].Votes
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// matchesAny reports whether the record's cuisine string contains any of the
// requested tags as a substring, so "indian" matches "north indian, mughlai".
func matchesAny(cuisines string, tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(cuisines, tag) {
			return true
		}
	}
	return false
}
