package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
)

// routeHandler mounts the submissions routes on a mux so path values resolve.
func submissionMux(h *SubmissionHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/submissions", h.List)
	mux.HandleFunc("GET /api/admin/submissions/count", h.Count)
	mux.HandleFunc("PATCH /api/admin/submissions/{id}", h.Update)
	mux.HandleFunc("DELETE /api/admin/submissions/{id}", h.Delete)
	return mux
}

func TestSubmissionList_ParsesQueryOptions(t *testing.T) {
	var gotOpts model.SubmissionListOptions
	svc := &mockContactService{
		listFunc: func(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	mux := submissionMux(NewSubmissionHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions?handled=false&limit=10&offset=20", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOpts.Handled == nil || *gotOpts.Handled != false {
		t.Errorf("handled filter not parsed: %+v", gotOpts)
	}
	if gotOpts.Limit != 10 || gotOpts.Offset != 20 {
		t.Errorf("pagination not parsed: %+v", gotOpts)
	}
}

func TestSubmissionList_EmptyIsJSONArray(t *testing.T) {
	svc := &mockContactService{}
	mux := submissionMux(NewSubmissionHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), `"submissions":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestSubmissionCount_ReturnsCount(t *testing.T) {
	svc := &mockContactService{
		countFunc: func(ctx context.Context, filter model.SubmissionFilter) (int, error) {
			if filter.Handled == nil || *filter.Handled != true {
				t.Errorf("handled filter not parsed: %+v", filter)
			}
			return 7, nil
		},
	}
	mux := submissionMux(NewSubmissionHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions/count?handled=true", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var resp map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["count"] != 7 {
		t.Errorf("expected count 7, got %d", resp["count"])
	}
}

func TestSubmissionUpdate_ForwardsPartialFields(t *testing.T) {
	var gotID string
	var gotUpd model.SubmissionUpdate
	svc := &mockContactService{
		updateFunc: func(ctx context.Context, id string, upd model.SubmissionUpdate) error {
			gotID, gotUpd = id, upd
			return nil
		},
	}
	mux := submissionMux(NewSubmissionHandler(svc))

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/submissions/sub-1", strings.NewReader(`{"handled":true}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "sub-1" {
		t.Errorf("expected id sub-1, got %q", gotID)
	}
	if gotUpd.Handled == nil || *gotUpd.Handled != true {
		t.Errorf("handled not forwarded: %+v", gotUpd)
	}
	if gotUpd.Notes != nil {
		t.Errorf("absent notes must stay nil, got %v", *gotUpd.Notes)
	}
}

func TestSubmissionUpdate_UnknownIDReturns404(t *testing.T) {
	svc := &mockContactService{
		updateFunc: func(ctx context.Context, id string, upd model.SubmissionUpdate) error {
			return repository.ErrNotFound
		},
	}
	mux := submissionMux(NewSubmissionHandler(svc))

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/submissions/missing", strings.NewReader(`{"handled":true}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	resp := decodeAction(t, rec)
	if resp.Message != "Failed to update submission" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestSubmissionDelete_UnknownIDReturns404(t *testing.T) {
	svc := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	mux := submissionMux(NewSubmissionHandler(svc))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/submissions/missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSubmissionDelete_StorageErrorReturns500(t *testing.T) {
	svc := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			return errors.New("connection reset")
		},
	}
	mux := submissionMux(NewSubmissionHandler(svc))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/submissions/sub-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
