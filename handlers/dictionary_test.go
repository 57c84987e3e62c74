package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordgrid/wordgrid-web/internal/config"
)

func newDictionaryRouter(baseURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Dictionary.BaseURL = baseURL
	cfg.Dictionary.Timeout = 2 * time.Second
	r := gin.New()
	NewDictionaryHandler(cfg).Register(r)
	return r
}

func TestWordDefinition_MissingWord(t *testing.T) {
	r := newDictionaryRouter("http://unused")
	req := httptest.NewRequest("GET", "/api/proxy/word-definition", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing word parameter"}`, w.Body.String())
}

func TestWordDefinition_EmptyUpstreamArray(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	r := newDictionaryRouter(upstream.URL)
	req := httptest.NewRequest("GET", "/api/proxy/word-definition?word=cat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"definition":"No definition found."}`, w.Body.String())
}

func TestWordDefinition_FirstDefinitionWins(t *testing.T) {
	var gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"word":"cat","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"a small domesticated carnivorous mammal"},{"definition":"second meaning"}]}]}]`))
	}))
	defer upstream.Close()

	r := newDictionaryRouter(upstream.URL)
	req := httptest.NewRequest("GET", "/api/proxy/word-definition?word=cat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "word=cat", gotQuery)
	assert.JSONEq(t, `{"definition":"a small domesticated carnivorous mammal"}`, w.Body.String())
}

func TestWordDefinition_UpstreamMissIsNotAnError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
	}))
	defer upstream.Close()

	r := newDictionaryRouter(upstream.URL)
	req := httptest.NewRequest("GET", "/api/proxy/word-definition?word=zzzzz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"definition":"No definition found."}`, w.Body.String())
}

func TestWordDefinition_UpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	r := newDictionaryRouter(upstream.URL)
	req := httptest.NewRequest("GET", "/api/proxy/word-definition?word=cat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Proxy request failed"}`, w.Body.String())
}
