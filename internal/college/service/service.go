package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"uniguide/internal/college/models"
	"uniguide/internal/college/store"
	"uniguide/internal/paging"
	"uniguide/internal/platform/metrics"
	dErrors "uniguide/pkg/domain-errors"
	"uniguide/pkg/platform/httputil"
)

// Cache is the advisory response cache for summaries. A nil Cache disables
// caching; errors inside an implementation must surface as misses.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// ListParams are the raw college query parameters after HTTP parsing.
type ListParams struct {
	Search     string
	State      string
	Region     string
	TuitionMin int
	TuitionMax int
	Sort       string
	Page       int
	PageSize   int
	Limit      int
}

// ListResult is one page of colleges plus pagination metadata.
type ListResult struct {
	Colleges []models.College `json:"colleges"`
	Meta     paging.Meta      `json:"meta"`
}

// Service implements the college query engine and the summary aggregation.
type Service struct {
	store    store.Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
	cache    Cache
	cacheTTL time.Duration
}

func New(st store.Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: st, logger: logger, metrics: m}
}

// WithCache enables the advisory summary cache.
func (s *Service) WithCache(c Cache, ttl time.Duration) *Service {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func (p ListParams) normalized() ListParams {
	if p.Limit <= 0 {
		p.Limit = 200
	}
	if p.Limit > 1000 {
		p.Limit = 1000
	}
	if p.Page < 1 {
		p.Page = 1
	}
	p.PageSize = httputil.Clamp(p.PageSize, 5, 50)
	if p.TuitionMax == 0 {
		p.TuitionMax = 1000000
	}
	return p
}

// List loads a bounded set of colleges, filters, sorts and returns the
// requested page. The fetch bound applies before filtering, so results can
// under-represent the true matching set when the store holds more documents.
func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	p = p.normalized()
	s.metrics.QueriesTotal.WithLabelValues("colleges").Inc()

	colleges, err := s.store.ListColleges(ctx, p.Limit)
	if err != nil {
		return ListResult{}, dErrors.Wrap(dErrors.CodeInternal, "failed to fetch colleges", err)
	}
	totalFetched := len(colleges)

	filtered := filter(colleges, p)
	sortColleges(filtered, p.Sort)

	total := len(filtered)
	page := paging.Slice(filtered, p.Page, p.PageSize)

	return ListResult{
		Colleges: page,
		Meta: paging.Meta{
			TotalFetched:     totalFetched,
			TotalReturned:    len(page),
			TotalUnpaginated: total,
			Page:             p.Page,
			PageSize:         p.PageSize,
			TotalPages:       paging.Pages(total, p.PageSize),
		},
	}, nil
}

// Get returns a single college by id.
func (s *Service) Get(ctx context.Context, id string) (models.College, error) {
	c, err := s.store.GetCollege(ctx, id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return models.College{}, dErrors.New(dErrors.CodeNotFound, "college not found")
		}
		return models.College{}, dErrors.Wrap(dErrors.CodeInternal, "failed to fetch college", err)
	}
	return c, nil
}

// filter applies the college predicate set: name-or-city substring search,
// exact state, region membership and the inclusive tuition range.
func filter(colleges []models.College, p ListParams) []models.College {
	search := strings.ToLower(p.Search)
	wantState := strings.ToUpper(p.State)

	out := colleges[:0:0]
	for _, c := range colleges {
		name := strings.ToLower(c.Name)
		city := strings.ToLower(c.City)
		state := strings.ToUpper(c.State)

		if search != "" && !strings.Contains(name, search) && !strings.Contains(city, search) {
			continue
		}
		if wantState != "" && state != wantState {
			continue
		}
		if p.Region != "" && !models.RegionContains(p.Region, state) {
			continue
		}
		if c.Tuition < p.TuitionMin || c.Tuition > p.TuitionMax {
			continue
		}
		out = append(out, c)
	}
	return out
}

// sortColleges orders by the requested key. Unrecognized keys fall back to
// name ascending; name compares are case-insensitive and stable.
func sortColleges(colleges []models.College, key string) {
	sort.SliceStable(colleges, func(i, j int) bool {
		a, b := colleges[i], colleges[j]
		switch key {
		case "name-desc":
			return strings.ToLower(a.Name) > strings.ToLower(b.Name)
		case "tuition-asc":
			return a.Tuition < b.Tuition
		case "tuition-desc":
			return a.Tuition > b.Tuition
		case "acceptance-asc":
			return a.AcceptanceRate < b.AcceptanceRate
		case "acceptance-desc":
			return a.AcceptanceRate > b.AcceptanceRate
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	})
}
