package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"uniguide/internal/college/models"
	dErrors "uniguide/pkg/domain-errors"
)

// Bucket is one half-open tuition range [Min, Max).
type Bucket struct {
	Name  string `json:"name"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

// Totals are the scalar aggregates over the filtered set.
type Totals struct {
	Total         int    `json:"total"`
	MedianTuition int    `json:"medianTuition"`
	PublicCount   int    `json:"publicCount"`
	PrivateCount  int    `json:"privateCount"`
	TopState      string `json:"topState"`
}

// Summary is the aggregate view served by the summary endpoint.
type Summary struct {
	Buckets     []Bucket       `json:"buckets"`
	Totals      Totals         `json:"totals"`
	StateCounts map[string]int `json:"stateCounts"`
}

// SummaryParams are the college filter parameters without pagination; the
// fetch bound is wider than the list endpoint's.
type SummaryParams struct {
	Search     string
	State      string
	Region     string
	TuitionMin int
	TuitionMax int
	Limit      int
}

func (p SummaryParams) normalized() SummaryParams {
	if p.Limit <= 0 {
		p.Limit = 2000
	}
	if p.Limit > 5000 {
		p.Limit = 5000
	}
	if p.TuitionMax == 0 {
		p.TuitionMax = 1000000
	}
	return p
}

func newBuckets() []Bucket {
	return []Bucket{
		{Name: "< $10k", Min: 0, Max: 10000},
		{Name: "$10k–$20k", Min: 10000, Max: 20000},
		{Name: "$20k–$40k", Min: 20000, Max: 40000},
		{Name: "$40k–$60k", Min: 40000, Max: 60000},
		{Name: "$60k+", Min: 60000, Max: 1000000},
	}
}

// Summarize applies the same filter predicate as List over a wider bound and
// computes the tuition histogram and scalar aggregates. Results may be served
// from the advisory cache.
func (s *Service) Summarize(ctx context.Context, p SummaryParams) (Summary, error) {
	p = p.normalized()
	s.metrics.QueriesTotal.WithLabelValues("colleges_summary").Inc()

	key := summaryCacheKey(p)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached Summary
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.metrics.SummaryCacheHits.Inc()
				return cached, nil
			}
		}
		s.metrics.SummaryCacheMisses.Inc()
	}

	colleges, err := s.store.ListColleges(ctx, p.Limit)
	if err != nil {
		return Summary{}, dErrors.Wrap(dErrors.CodeInternal, "failed to build summary", err)
	}

	filtered := filter(colleges, ListParams{
		Search:     p.Search,
		State:      p.State,
		Region:     p.Region,
		TuitionMin: p.TuitionMin,
		TuitionMax: p.TuitionMax,
	})

	summary := summarize(filtered)

	if s.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			s.cache.Set(ctx, key, string(raw), s.cacheTTL)
		}
	}
	return summary, nil
}

func summarize(colleges []models.College) Summary {
	buckets := newBuckets()
	for _, c := range colleges {
		for i := range buckets {
			if c.Tuition >= buckets[i].Min && c.Tuition < buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}

	tuitions := make([]int, 0, len(colleges))
	publicCount, privateCount := 0, 0
	stateCounts := make(map[string]int)
	var stateOrder []string
	for _, c := range colleges {
		tuitions = append(tuitions, c.Tuition)
		switch {
		case strings.EqualFold(c.Type, "public"):
			publicCount++
		case strings.EqualFold(c.Type, "private"):
			privateCount++
		}
		if _, seen := stateCounts[c.State]; !seen {
			stateOrder = append(stateOrder, c.State)
		}
		stateCounts[c.State]++
	}

	sort.Ints(tuitions)
	median := 0
	if len(tuitions) > 0 {
		median = tuitions[(len(tuitions)-1)/2]
	}

	// Ties go to the state first encountered while counting.
	topState := "-"
	best := 0
	for _, state := range stateOrder {
		if stateCounts[state] > best {
			best = stateCounts[state]
			topState = state
		}
	}

	return Summary{
		Buckets: buckets,
		Totals: Totals{
			Total:         len(colleges),
			MedianTuition: median,
			PublicCount:   publicCount,
			PrivateCount:  privateCount,
			TopState:      topState,
		},
		StateCounts: stateCounts,
	}
}

func summaryCacheKey(p SummaryParams) string {
	return fmt.Sprintf("colleges:summary:%s|%s|%s|%d|%d|%d",
		p.Search, p.State, p.Region, p.TuitionMin, p.TuitionMax, p.Limit)
}
