package apihandlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlogtagger/internal/app"
	"vlogtagger/internal/services"
	"vlogtagger/pkg/analyzer"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	a := &app.App{
		Engine:          analyzer.New(),
		AnalysisService: services.NewAnalysisService(analyzer.New(), nil),
	}
	h := NewAPIHandler(a)

	router := gin.New()
	v1 := router.Group("/api/v1")
	analyze := v1.Group("/analyze")
	{
		analyze.POST("/tags", h.AnalyzeTagsHandler)
		analyze.POST("/categories", h.AnalyzeCategoriesHandler)
		analyze.POST("/sentiment", h.AnalyzeSentimentHandler)
		analyze.POST("/phrases", h.AnalyzePhrasesHandler)
	}
	v1.POST("/vlogs", h.CreateVlogHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeTagsHandler(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/analyze/tags",
		`{"description": "I love building AI apps with React and Node tutorials", "category": "technology", "max_tags": 8}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Tags []string `json:"tags"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Tags)
	assert.LessOrEqual(t, len(resp.Data.Tags), 8)
	assert.Contains(t, resp.Data.Tags, "tutorial")
}

func TestAnalyzeTagsHandler_EmptyDescription(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/analyze/tags", `{"description": ""}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Tags []string `json:"tags"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Tags)
}

func TestAnalyzeSentimentHandler(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/analyze/sentiment",
		`{"description": "This is absolutely amazing and wonderful, I love it so much!"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sentiment":"positive"`)
}

func TestAnalyzeCategoriesHandler(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/analyze/categories",
		`{"description": "daily workout at the gym with cardio training", "tags": ["fitness"]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Categories []string `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Categories)
	assert.Equal(t, "fitness", resp.Data.Categories[0])
}

func TestAnalyzePhrasesHandler(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/analyze/phrases",
		`{"description": "home workout routine. home workout routine. home workout routine!", "max_phrases": 5}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Phrases []string `json:"phrases"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Phrases)
	assert.LessOrEqual(t, len(resp.Data.Phrases), 5)
}

func TestAnalyzeHandlers_BadJSON(t *testing.T) {
	router := newTestRouter()
	for _, path := range []string{
		"/api/v1/analyze/tags",
		"/api/v1/analyze/categories",
		"/api/v1/analyze/sentiment",
		"/api/v1/analyze/phrases",
	} {
		w := postJSON(t, router, path, `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestCreateVlogHandler_NoDatabaseConfigured(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/vlogs", `{"title": "x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
