package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/runsha/sketchfolio/model"
	"github.com/runsha/sketchfolio/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPageRenderContext(t *testing.T) {
	handler, _ := setupMockServerHandler(false)
	selector := model.NewSelector()
	selector.Select(model.SectionProjects)

	result := handler.BuildPageRenderContext(selector)

	assert.Same(t, handler.Profile, result.Profile)
	assert.Same(t, selector, result.Selector)
	assert.Equal(t, components.LinkModeQuery, result.Links)
	assert.Equal(t, model.SectionProjects, result.Current())
}

func TestPageHandle(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedPanel  string
	}{
		{name: "initial load", url: "/", expectedStatus: http.StatusOK, expectedPanel: "about"},
		{name: "empty section", url: "/?section=", expectedStatus: http.StatusOK, expectedPanel: "about"},
		{name: "select skills", url: "/?section=skills", expectedStatus: http.StatusOK, expectedPanel: "skills"},
		{name: "select projects", url: "/?section=projects", expectedStatus: http.StatusOK, expectedPanel: "projects"},
		{name: "reselect about", url: "/?section=about", expectedStatus: http.StatusOK, expectedPanel: "about"},
		{name: "blank section", url: "/?section=%20", expectedStatus: http.StatusOK, expectedPanel: "about"},
		{name: "padded section", url: "/?section=%20skills%20", expectedStatus: http.StatusOK, expectedPanel: "skills"},
		{name: "case insensitive", url: "/?section=Skills", expectedStatus: http.StatusOK, expectedPanel: "skills"},
		{name: "first query value is used", url: "/?section=projects&section=skills", expectedStatus: http.StatusOK, expectedPanel: "projects"},
		{name: "unknown section", url: "/?section=blog", expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, _ := setupMockServerHandler(false)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			w := httptest.NewRecorder()

			handler.PageHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedPanel == "" {
				assert.NotContains(t, w.Body.String(), "data-panel=")

				return
			}

			body := w.Body.String()
			assert.Equal(t, 1, strings.Count(body, "data-panel="), "exactly one panel should be visible")
			assert.Contains(t, body, `data-panel="`+tc.expectedPanel+`"`)
		})
	}
}

// Each request owns its selector, so one visitor's choice never leaks into the next render.
func TestPageHandleStartsFromAboutOnEveryRequest(t *testing.T) {
	handler, _ := setupMockServerHandler(false)

	for _, url := range []string{"/?section=projects", "/?section=skills", "/"} {
		w := httptest.NewRecorder()
		handler.PageHandle(w, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	handler.PageHandle(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, w.Body.String(), `data-panel="about"`)
}

func TestPageHandleTracking(t *testing.T) {
	t.Run("records rendered section", func(t *testing.T) {
		handler, storage := setupMockServerHandler(true)

		handler.PageHandle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?section=skills", nil))

		require.Len(t, storage.Views, 1)
		assert.Equal(t, model.SectionSkills, storage.Views[0].Section)
		assert.Len(t, storage.Views[0].Visitor, 16)
	})

	t.Run("does not record rejected requests", func(t *testing.T) {
		handler, storage := setupMockServerHandler(true)

		handler.PageHandle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?section=nope", nil))

		assert.Empty(t, storage.Views)
	})

	t.Run("respects do not track", func(t *testing.T) {
		handler, storage := setupMockServerHandler(true)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("DNT", "1")
		handler.PageHandle(httptest.NewRecorder(), req)

		assert.Empty(t, storage.Views)
	})

	t.Run("storage errors do not fail the page", func(t *testing.T) {
		handler, storage := setupMockServerHandler(true)
		storage.ReturnError = errors.New("database locked")

		w := httptest.NewRecorder()
		handler.PageHandle(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// brokenResponseWriter fails every body write and records status codes.
type brokenResponseWriter struct {
	header   http.Header
	statuses []int
}

func (w *brokenResponseWriter) Header() http.Header {
	return w.header
}

func (w *brokenResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func (w *brokenResponseWriter) WriteHeader(status int) {
	w.statuses = append(w.statuses, status)
}

func TestPageHandleWriteFailure(t *testing.T) {
	handler, storage := setupMockServerHandler(true)
	w := &brokenResponseWriter{header: http.Header{}}

	handler.PageHandle(w, httptest.NewRequest(http.MethodGet, "/?section=skills", nil))

	assert.Empty(t, w.statuses, "no error status after the response has started")
	assert.Empty(t, storage.Views)
}
