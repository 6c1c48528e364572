package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniguide/internal/platform/metrics"
	"uniguide/internal/student/models"
	"uniguide/internal/student/service"
	"uniguide/internal/student/store"
)

func newTestServer(t *testing.T) (*chi.Mux, *store.InMemoryStore) {
	t.Helper()
	st := store.NewInMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(st, log, metrics.NewWith(prometheus.NewRegistry()))
	r := chi.NewRouter()
	New(svc, log).Register(r)
	return r, st
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListStudents(t *testing.T) {
	r, st := newTestServer(t)
	for i := 0; i < 12; i++ {
		_, err := st.CreateStudent(context.Background(), models.Student{Name: fmt.Sprintf("Student %02d", i), Status: "Applying"})
		require.NoError(t, err)
	}

	rec := doJSON(t, r, http.MethodGet, "/api/students?page=2&pageSize=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode[service.ListResult](t, rec)
	assert.Len(t, body.Students, 2)
	assert.Equal(t, 12, body.Meta.TotalFetched)
	assert.Equal(t, 12, body.Meta.TotalUnpaginated)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 10, body.Meta.PageSize)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestListStudentsOutOfRangePage(t *testing.T) {
	r, st := newTestServer(t)
	_, err := st.CreateStudent(context.Background(), models.Student{Name: "Only One"})
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodGet, "/api/students?page=9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[service.ListResult](t, rec)
	assert.Empty(t, body.Students)
	assert.Equal(t, 1, body.Meta.TotalUnpaginated)
}

func TestGetStudentDetail(t *testing.T) {
	r, st := newTestServer(t)
	created, err := st.CreateStudent(context.Background(), models.Student{Name: "Ada", Status: "Applying"})
	require.NoError(t, err)
	st.SeedEssay(created.ID, models.Essay{Prompt: "Why Us"})

	rec := doJSON(t, r, http.MethodGet, "/api/students/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	detail := decode[models.Detail](t, rec)
	assert.Equal(t, "Ada", detail.Name)
	require.Len(t, detail.Essays, 1)
	// Absent subcollections serialize as empty arrays, not null.
	assert.Contains(t, rec.Body.String(), `"notes":[]`)
	assert.Contains(t, rec.Body.String(), `"colleges":[]`)
}

func TestGetStudentNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/students/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "student not found"}`, rec.Body.String())
}

func TestCreateStudent(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/students", models.Student{Name: "New Kid"})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[models.Student](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Exploring", created.Status)
}

func TestCreateStudentMalformedBody(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "invalid request body"}`, rec.Body.String())
}

func TestUpdateAndDeleteStudent(t *testing.T) {
	r, st := newTestServer(t)
	created, err := st.CreateStudent(context.Background(), models.Student{Name: "Before"})
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodPut, "/api/students/"+created.ID, models.Student{Name: "After", Status: "Submitted"})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := st.GetStudent(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)

	rec = doJSON(t, r, http.MethodDelete, "/api/students/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/students/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteLifecycleLogsInteraction(t *testing.T) {
	r, st := newTestServer(t)
	created, err := st.CreateStudent(context.Background(), models.Student{Name: "Ada"})
	require.NoError(t, err)
	base := "/api/students/" + created.ID

	rec := doJSON(t, r, http.MethodPost, base+"/notes", models.Note{Author: "Counselor", Content: "Call next week"})
	require.Equal(t, http.StatusCreated, rec.Code)
	note := decode[models.Note](t, rec)
	require.NotEmpty(t, note.ID)

	interactions, err := st.ListInteractions(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	assert.Equal(t, "note_added", interactions[0].Type)
	assert.Equal(t, "Note added by Counselor", interactions[0].Detail)

	rec = doJSON(t, r, http.MethodPut, base+"/notes/"+note.ID, models.Note{Author: "Counselor", Content: "Called"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, base+"/notes/"+note.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, base+"/notes/"+note.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommunicationEndpoints(t *testing.T) {
	r, st := newTestServer(t)
	created, err := st.CreateStudent(context.Background(), models.Student{Name: "Ada"})
	require.NoError(t, err)
	base := "/api/students/" + created.ID

	rec := doJSON(t, r, http.MethodPost, base+"/communications", models.Communication{Type: "email", Content: "Sent checklist"})
	require.Equal(t, http.StatusCreated, rec.Code)
	comm := decode[models.Communication](t, rec)

	rec = doJSON(t, r, http.MethodPut, base+"/communications/"+comm.ID, models.Communication{Type: "call", Content: "Follow-up"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, base+"/communications/"+comm.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAddInteraction(t *testing.T) {
	r, st := newTestServer(t)
	created, err := st.CreateStudent(context.Background(), models.Student{Name: "Ada"})
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodPost, "/api/students/"+created.ID+"/interactions", models.Interaction{Type: "meeting", Detail: "Campus visit"})
	require.Equal(t, http.StatusCreated, rec.Code)

	interactions, err := st.ListInteractions(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	assert.Equal(t, "meeting", interactions[0].Type)
}
