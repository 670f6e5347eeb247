package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/gems85/bolt-quotes-proxy/internal/adapter/http/handlers/mocks"
	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase"
)

func newProjectRouter(uc *mocks.MockIProjectUseCase) *gin.Engine {
	h := NewProjectHandler(uc)
	r := gin.New()
	r.GET("/v1/projects", h.ListProjects)
	r.GET("/v1/projects/:projectId", h.GetProject)
	r.PATCH("/v1/projects/:projectId/status", h.UpdateProjectStatus)
	r.GET("/v1/photos/:projectId", h.ListPhotos)
	r.GET("/v1/company-config", h.GetCompanyConfig)
	return r
}

func TestProjectHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(uc)

	uc.EXPECT().ListProjects(gomock.Any()).Return([]entities.Project{
		{ID: "rec123", CustomerName: "Dana", Status: entities.ProjectStatusNewLead},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "rec123" || body[0]["customerName"] != "Dana" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)

		uc.EXPECT().GetProject(gomock.Any(), "recX").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/recX", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)

		uc.EXPECT().GetProject(gomock.Any(), "rec123").Return(entities.Project{ID: "rec123"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/rec123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_UpdateProjectStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/rec123/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)

		uc.EXPECT().UpdateProjectStatus(gomock.Any(), "rec123", "Accepted").
			Return(entities.Project{ID: "rec123", Status: entities.ProjectStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/rec123/status", bytes.NewBufferString(`{"status":"Accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "Accepted" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestProjectHandler_ListPhotos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(uc)

	uc.EXPECT().ListPhotos(gomock.Any(), "rec123").Return([]entities.Photo{
		{ID: "ph1", PhotoType: "Panel", Files: []entities.PhotoFile{{URL: "https://example.com/p.jpg"}}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/photos/rec123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "ph1" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestProjectHandler_GetCompanyConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(uc)

	uc.EXPECT().CompanyConfig(gomock.Any()).Return(entities.DefaultCompanyConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/company-config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["companyName"] != "EV Charge Pro" {
		t.Fatalf("unexpected body %v", body)
	}
}
