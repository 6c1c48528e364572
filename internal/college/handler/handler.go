package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	collegemodels "uniguide/internal/college/models"
	"uniguide/internal/college/service"
	"uniguide/internal/platform/middleware"
	dErrors "uniguide/pkg/domain-errors"
	"uniguide/pkg/platform/httputil"
)

// Service defines the college operations the HTTP layer depends on.
type Service interface {
	List(ctx context.Context, p service.ListParams) (service.ListResult, error)
	Get(ctx context.Context, id string) (collegemodels.College, error)
	Summarize(ctx context.Context, p service.SummaryParams) (service.Summary, error)
}

// Handler exposes the college endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: svc}
}

// Register mounts the college routes. The summary route registers before the
// id route so "summary" is never captured as a college id.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/colleges", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/summary", h.handleSummary)
		r.Get("/{collegeID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := listParams(r.URL.Query())
	result, err := h.service.List(r.Context(), params)
	if err != nil {
		h.logError(r, "list colleges failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := service.SummaryParams{
		Search:     q.Get("search"),
		State:      q.Get("state"),
		Region:     q.Get("region"),
		TuitionMin: httputil.QueryInt(q, "tuitionMin", 0),
		TuitionMax: httputil.QueryInt(q, "tuitionMax", 1000000),
		Limit:      httputil.QueryInt(q, "limit", 2000),
	}
	summary, err := h.service.Summarize(r.Context(), params)
	if err != nil {
		h.logError(r, "college summary failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]service.Summary{"summary": summary})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "collegeID"))
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "get college failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func listParams(q url.Values) service.ListParams {
	return service.ListParams{
		Search:     q.Get("search"),
		State:      q.Get("state"),
		Region:     q.Get("region"),
		TuitionMin: httputil.QueryInt(q, "tuitionMin", 0),
		TuitionMax: httputil.QueryInt(q, "tuitionMax", 1000000),
		Sort:       q.Get("sort"),
		Page:       httputil.QueryInt(q, "page", 1),
		PageSize:   httputil.QueryInt(q, "pageSize", 20),
		Limit:      httputil.QueryInt(q, "limit", 200),
	}
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg,
		"request_id", middleware.GetRequestID(r.Context()),
		"error", err,
	)
}
