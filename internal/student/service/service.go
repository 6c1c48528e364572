package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"uniguide/internal/paging"
	"uniguide/internal/platform/metrics"
	"uniguide/internal/student/models"
	"uniguide/internal/student/store"
	dErrors "uniguide/pkg/domain-errors"
	"uniguide/pkg/platform/httputil"
)

// ListParams are the raw student query parameters after HTTP parsing.
// Out-of-range values are clamped here, never rejected.
type ListParams struct {
	Search         string
	Status         string
	ProgressMin    int
	Sort           string
	Page           int
	PageSize       int
	StaleDays      int
	HighIntent     bool
	NeedsEssayHelp bool
	Limit          int
}

// ListResult is one page of students plus pagination metadata.
type ListResult struct {
	Students []models.Student `json:"students"`
	Meta     paging.Meta      `json:"meta"`
}

// Service implements the student query engine and the per-student record
// operations. All evaluation is request-scoped; the service holds no mutable
// state.
type Service struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(st store.Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: st, logger: logger, metrics: m, now: time.Now}
}

// StatusProgress maps an application status to its display progress score.
// The mapping is total: unknown labels score 10.
func StatusProgress(status string) int {
	switch status {
	case models.StatusExploring:
		return 20
	case models.StatusApplying:
		return 50
	case models.StatusSubmitted:
		return 80
	case models.StatusAccepted:
		return 100
	default:
		return 10
	}
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
	if p.Sort != "desc" {
		p.Sort = "asc"
	}
	return p
}

// List loads a bounded set of students, applies every active predicate,
// sorts by name and returns the requested page. Out-of-range pages yield an
// empty page, not an error.
func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	p = p.normalized()
	s.metrics.QueriesTotal.WithLabelValues("students").Inc()

	students, err := s.store.ListStudents(ctx, p.Limit)
	if err != nil {
		return ListResult{}, dErrors.Wrap(dErrors.CodeInternal, "failed to fetch students", err)
	}
	totalFetched := len(students)

	if p.StaleDays > 0 {
		s.resolveLastContact(ctx, students)
	}

	filtered := students[:0:0]
	now := s.now()
	for _, st := range students {
		if s.matches(st, p, now) {
			filtered = append(filtered, st)
		}
	}

	sortByName(filtered, p.Sort)

	total := len(filtered)
	totalPages := paging.Pages(total, p.PageSize)
	page := paging.Slice(filtered, p.Page, p.PageSize)

	return ListResult{
		Students: page,
		Meta: paging.Meta{
			TotalFetched:     totalFetched,
			TotalReturned:    len(page),
			TotalUnpaginated: total,
			Page:             p.Page,
			PageSize:         p.PageSize,
			TotalPages:       totalPages,
		},
	}, nil
}

// resolveLastContact fans out one communications sub-query per candidate and
// records the most recent of lastActive and any communication date. A failed
// sub-fetch leaves that student with whatever lastActive provides; it never
// fails the request.
func (s *Service) resolveLastContact(ctx context.Context, students []models.Student) {
	g := new(errgroup.Group)
	for i := range students {
		g.Go(func() error {
			st := &students[i]
			last := st.LastActive
			comms, err := s.store.ListCommunications(ctx, st.ID)
			if err != nil {
				s.metrics.StaleFanoutFailures.Inc()
				s.logger.WarnContext(ctx, "communications sub-fetch failed",
					"student_id", st.ID,
					"error", err,
				)
				comms = nil
			}
			for _, c := range comms {
				if c.Date != nil && (last == nil || c.Date.After(*last)) {
					last = c.Date
				}
			}
			st.LastContactAt = last
			return nil
		})
	}
	_ = g.Wait()
}

// matches applies every active predicate; a student passes only when all of
// them do.
func (s *Service) matches(st models.Student, p ListParams, now time.Time) bool {
	if p.Search != "" && !strings.Contains(strings.ToLower(st.Name), strings.ToLower(p.Search)) {
		return false
	}
	if p.Status != "" && p.Status != "All" && st.Status != p.Status {
		return false
	}
	if StatusProgress(st.Status) < p.ProgressMin {
		return false
	}
	if p.HighIntent && !isHighIntent(st) {
		return false
	}
	if p.NeedsEssayHelp && !needsEssayHelp(st) {
		return false
	}
	if p.StaleDays > 0 && !isStale(st, p.StaleDays, now) {
		return false
	}
	return true
}

func isHighIntent(st models.Student) bool {
	return strings.EqualFold(st.Intent, "high") || st.HighIntent
}

func needsEssayHelp(st models.Student) bool {
	return st.Status == "Needs Essay Help" || st.NeedsEssayHelp
}

// isStale reports whether the student's last contact is older than the
// window. A student with no known contact at all is always stale.
func isStale(st models.Student, staleDays int, now time.Time) bool {
	last := st.LastContactAt
	if last == nil {
		last = st.LastActive
	}
	if last == nil {
		return true
	}
	diffDays := now.Sub(*last).Hours() / 24
	return diffDays > float64(staleDays)
}

// sortByName orders case-insensitively by name. The sort is stable so equal
// names keep their original order.
func sortByName(students []models.Student, dir string) {
	sort.SliceStable(students, func(i, j int) bool {
		a := strings.ToLower(students[i].Name)
		b := strings.ToLower(students[j].Name)
		if dir == "desc" {
			return a > b
		}
		return a < b
	})
}
