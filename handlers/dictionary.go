package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/wordgrid/wordgrid-web/internal/config"
	"github.com/wordgrid/wordgrid-web/pkg/logger"
	"github.com/wordgrid/wordgrid-web/pkg/metrics"
)

// NoDefinitionFound is returned whenever the dictionary upstream has nothing
// usable for the requested word. The route is deliberately best-effort.
const NoDefinitionFound = "No definition found."

// dictionaryEntry matches the shape of the external dictionary service's
// response: an array of entries, each with nested meanings.
type dictionaryEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// DictionaryHandler proxies word lookups to the external dictionary service.
// Unlike the game-backend routes this one shapes the response: the frontend
// only ever wants a single definition string.
type DictionaryHandler struct {
	baseURL string
	client  *http.Client
}

func NewDictionaryHandler(cfg *config.Config) *DictionaryHandler {
	client := sharedHTTPClient
	if cfg.Dictionary.Timeout > 0 && cfg.Dictionary.Timeout != sharedHTTPClient.Timeout {
		client = &http.Client{Timeout: cfg.Dictionary.Timeout, Transport: sharedHTTPClient.Transport}
	}
	return &DictionaryHandler{baseURL: cfg.Dictionary.BaseURL, client: client}
}

func (h *DictionaryHandler) Register(r *gin.Engine) {
	r.GET("/api/proxy/word-definition", h.WordDefinition)
}

func (h *DictionaryHandler) WordDefinition(c *gin.Context) {
	word := c.Query("word")
	if word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing word parameter"})
		return
	}

	lookupURL := h.baseURL + "/word/definition?word=" + url.QueryEscape(word)
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, lookupURL, nil)
	if err != nil {
		h.fail(c, "build_request", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		h.fail(c, "upstream_unreachable", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// dictionary misses (404 for unknown words) are not errors
		logger.Debugf("dictionary: upstream returned %d for %q", resp.StatusCode, word)
		c.JSON(http.StatusOK, gin.H{"definition": NoDefinitionFound})
		return
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		h.fail(c, "upstream_unreachable", err)
		return
	}
	var entries []dictionaryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		h.fail(c, "malformed_response", err)
		return
	}

	metrics.ProxyRelayed.WithLabelValues("word_definition", "200").Inc()
	c.JSON(http.StatusOK, gin.H{"definition": firstDefinition(entries)})
}

func (h *DictionaryHandler) fail(c *gin.Context, kind string, err error) {
	logger.Errorf("proxy word_definition: %s: %v", kind, err)
	metrics.ProxyFailed.WithLabelValues("word_definition", kind).Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"error": proxyFailedBody})
}

// firstDefinition walks the nested upstream shape and returns the first
// definition string, or the fallback when the entries hold none.
func firstDefinition(entries []dictionaryEntry) string {
	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition != "" {
					return d.Definition
				}
			}
		}
	}
	return NoDefinitionFound
}
