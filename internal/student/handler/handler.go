package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"uniguide/internal/platform/middleware"
	"uniguide/internal/student/models"
	"uniguide/internal/student/service"
	dErrors "uniguide/pkg/domain-errors"
	"uniguide/pkg/platform/httputil"
)

// Service defines the student operations the HTTP layer depends on.
type Service interface {
	List(ctx context.Context, p service.ListParams) (service.ListResult, error)
	Get(ctx context.Context, id string) (models.Detail, error)
	Create(ctx context.Context, st models.Student) (models.Student, error)
	Update(ctx context.Context, st models.Student) error
	Delete(ctx context.Context, id string) error

	AddNote(ctx context.Context, studentID string, n models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, studentID string, n models.Note) error
	DeleteNote(ctx context.Context, studentID, noteID string) error

	AddCommunication(ctx context.Context, studentID string, c models.Communication) (models.Communication, error)
	UpdateCommunication(ctx context.Context, studentID string, c models.Communication) error
	DeleteCommunication(ctx context.Context, studentID, commID string) error

	AddInteraction(ctx context.Context, studentID string, i models.Interaction) (models.Interaction, error)
}

// Handler exposes the student endpoints. It parses and coerces inputs, then
// delegates; query semantics live in the service.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: svc}
}

// Register mounts the student routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/students", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{studentID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)

			r.Post("/notes", h.handleAddNote)
			r.Put("/notes/{noteID}", h.handleUpdateNote)
			r.Delete("/notes/{noteID}", h.handleDeleteNote)

			r.Post("/communications", h.handleAddCommunication)
			r.Put("/communications/{commID}", h.handleUpdateCommunication)
			r.Delete("/communications/{commID}", h.handleDeleteCommunication)

			r.Post("/interactions", h.handleAddInteraction)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := service.ListParams{
		Search:         q.Get("search"),
		Status:         q.Get("status"),
		ProgressMin:    httputil.QueryInt(q, "progressMin", 0),
		Sort:           q.Get("sort"),
		Page:           httputil.QueryInt(q, "page", 1),
		PageSize:       httputil.QueryInt(q, "pageSize", 10),
		StaleDays:      httputil.QueryInt(q, "staleDays", 0),
		HighIntent:     httputil.QueryFlag(q, "highIntent"),
		NeedsEssayHelp: httputil.QueryFlag(q, "needsEssayHelp"),
		Limit:          httputil.QueryInt(q, "limit", 200),
	}

	result, err := h.service.List(r.Context(), params)
	if err != nil {
		h.logError(r, "list students failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Get(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "get student failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var st models.Student
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	created, err := h.service.Create(r.Context(), st)
	if err != nil {
		h.logError(r, "create student failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var st models.Student
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	st.ID = chi.URLParam(r, "studentID")
	if err := h.service.Update(r.Context(), st); err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "update student failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "studentID")); err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "delete student failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddNote(w http.ResponseWriter, r *http.Request) {
	var n models.Note
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	created, err := h.service.AddNote(r.Context(), chi.URLParam(r, "studentID"), n)
	if err != nil {
		h.logError(r, "add note failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var n models.Note
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	n.ID = chi.URLParam(r, "noteID")
	if err := h.service.UpdateNote(r.Context(), chi.URLParam(r, "studentID"), n); err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "update note failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteNote(r.Context(), chi.URLParam(r, "studentID"), chi.URLParam(r, "noteID"))
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "delete note failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddCommunication(w http.ResponseWriter, r *http.Request) {
	var c models.Communication
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	created, err := h.service.AddCommunication(r.Context(), chi.URLParam(r, "studentID"), c)
	if err != nil {
		h.logError(r, "add communication failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateCommunication(w http.ResponseWriter, r *http.Request) {
	var c models.Communication
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	c.ID = chi.URLParam(r, "commID")
	if err := h.service.UpdateCommunication(r.Context(), chi.URLParam(r, "studentID"), c); err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "update communication failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCommunication(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteCommunication(r.Context(), chi.URLParam(r, "studentID"), chi.URLParam(r, "commID"))
	if err != nil {
		if !dErrors.Is(err, dErrors.CodeNotFound) {
			h.logError(r, "delete communication failed", err)
		}
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddInteraction(w http.ResponseWriter, r *http.Request) {
	var i models.Interaction
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	created, err := h.service.AddInteraction(r.Context(), chi.URLParam(r, "studentID"), i)
	if err != nil {
		h.logError(r, "add interaction failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg,
		"request_id", middleware.GetRequestID(r.Context()),
		"error", err,
	)
}
