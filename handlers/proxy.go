package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wordgrid/wordgrid-web/internal/config"
	"github.com/wordgrid/wordgrid-web/pkg/logger"
	"github.com/wordgrid/wordgrid-web/pkg/metrics"
)

// The proxy layer forwards browser calls to the external game backend. Every
// route is a fixed one-off forwarding rule described by a proxyRoute entry;
// forward() is the single generic implementation behind all of them. Handlers
// are stateless: one upstream attempt per inbound call, status and JSON body
// relayed unmodified.

// sessionCookie is the cookie the frontend stores its bearer token under when
// the Authorization header is not used directly.
const sessionCookie = "jwt"

// proxyFailedBody is the fixed external response for every local failure.
// Intentionally generic: the failure kind is visible only in logs/metrics.
const proxyFailedBody = "Proxy request failed"

// queryParam is one allow-listed inbound query parameter.
type queryParam struct {
	Name     string // inbound name
	Upstream string // outbound name; empty means same as Name
	Default  string // substituted when the inbound value is absent
	Required bool   // reject with 400 when absent
}

// proxyRoute describes one forwarding rule. Routes that set ForwardAll relay
// the entire inbound header set to the upstream; this is a compatibility shim
// for the generic route, not a default; new routes should forward minimal
// headers (content-type plus derived auth).
type proxyRoute struct {
	Name        string // metric/log label
	Method      string
	Path        string // inbound path
	Upstream    string // upstream path
	Params      []queryParam
	RequireAuth bool // return 401 before contacting upstream when no credential
	ForwardAll  bool
}

var proxyRoutes = []proxyRoute{
	{Name: "profile", Method: http.MethodGet, Path: "/api/proxy/profile", Upstream: "/user/profile"},
	{Name: "missions", Method: http.MethodGet, Path: "/api/proxy/missions", Upstream: "/user/missions"},
	{Name: "complete_mission", Method: http.MethodPost, Path: "/api/proxy/complete-mission", Upstream: "/user/complete-mission"},
	{Name: "history", Method: http.MethodGet, Path: "/api/proxy/history", Upstream: "/user/history",
		Params: []queryParam{{Name: "range", Default: "weekly"}}},
	{Name: "session_words", Method: http.MethodGet, Path: "/api/proxy/session-words", Upstream: "/user/session-words",
		Params: []queryParam{{Name: "range", Default: "weekly"}, {Name: "timezone", Upstream: "tz"}}},
	{Name: "session_words_detailed", Method: http.MethodGet, Path: "/api/proxy/session-words/detailed", Upstream: "/user/session-words",
		Params: []queryParam{{Name: "range", Default: "weekly"}, {Name: "timezone", Upstream: "tz"}, {Name: "detail", Default: "true"}}},
	{Name: "currency_history", Method: http.MethodGet, Path: "/api/proxy/currency-history", Upstream: "/user/currency/history",
		Params: []queryParam{{Name: "type", Default: "all"}, {Name: "limit", Default: "100"}}},
	{Name: "statistics_daily", Method: http.MethodGet, Path: "/api/proxy/statistics/daily", Upstream: "/user/statistics/daily",
		Params: []queryParam{{Name: "date"}}},
	{Name: "statistics_weekly", Method: http.MethodGet, Path: "/api/proxy/statistics/weekly", Upstream: "/user/statistics/weekly",
		Params: []queryParam{{Name: "week"}}},
	{Name: "statistics_monthly", Method: http.MethodGet, Path: "/api/proxy/statistics/monthly", Upstream: "/user/statistics/monthly",
		Params: []queryParam{{Name: "month"}}},
	{Name: "statistics_detailed", Method: http.MethodGet, Path: "/api/proxy/statistics/detailed", Upstream: "/user/statistics/detailed",
		Params: []queryParam{{Name: "date"}}},
	{Name: "theme_day", Method: http.MethodGet, Path: "/api/proxy/theme-day", Upstream: "/user/theme/day",
		Params: []queryParam{{Name: "date"}}, RequireAuth: true},
	{Name: "theme_analytics", Method: http.MethodGet, Path: "/api/proxy/theme-analytics", Upstream: "/user/theme/analytics"},
	{Name: "time_analytics", Method: http.MethodGet, Path: "/api/proxy/time-analytics", Upstream: "/user/time-analytics", RequireAuth: true},
	{Name: "next_reset", Method: http.MethodGet, Path: "/api/proxy/next-reset", Upstream: "/missions/next-reset"},
	{Name: "signin", Method: http.MethodPost, Path: "/api/proxy/signin", Upstream: "/signin"},
}

// Shared HTTP client with connection pooling; per-handler timeouts come from
// config via NewProxyHandler.
var sharedHTTPClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// ProxyHandler holds the upstream base URL and the HTTP client shared by all
// forwarding routes.
type ProxyHandler struct {
	backendURL string
	client     *http.Client
}

func NewProxyHandler(cfg *config.Config) *ProxyHandler {
	client := sharedHTTPClient
	if cfg.Backend.Timeout > 0 && cfg.Backend.Timeout != sharedHTTPClient.Timeout {
		client = &http.Client{Timeout: cfg.Backend.Timeout, Transport: sharedHTTPClient.Transport}
	}
	return &ProxyHandler{backendURL: cfg.Backend.BaseURL, client: client}
}

// Register binds every table route plus the generic path proxy.
func (h *ProxyHandler) Register(r *gin.Engine) {
	for _, rt := range proxyRoutes {
		rt := rt
		r.Handle(rt.Method, rt.Path, h.forward(rt))
	}
	r.GET("/api/proxy", h.Generic)
	r.POST("/api/proxy", h.Generic)
}

// bearerFromRequest derives the outbound Authorization value from an inbound
// request: the Authorization header verbatim when present, otherwise
// "Bearer <v>" synthesized from the session cookie. Absence is a valid
// outcome, not an error; callers decide whether to reject.
func bearerFromRequest(c *gin.Context) (string, bool) {
	if auth := c.GetHeader("Authorization"); auth != "" {
		logger.Debugf("proxy: using inbound Authorization header")
		return auth, true
	}
	if ck, err := c.Cookie(sessionCookie); err == nil && ck != "" {
		logger.Debugf("proxy: derived bearer from %s cookie", sessionCookie)
		return "Bearer " + ck, true
	}
	logger.Debugf("proxy: no credential on inbound request")
	return "", false
}

// forward builds the per-route handler around relay().
func (h *ProxyHandler) forward(rt proxyRoute) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred, ok := bearerFromRequest(c)
		if rt.RequireAuth && !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required. Sign in and retry."})
			return
		}

		q := url.Values{}
		for _, p := range rt.Params {
			v := c.Query(p.Name)
			if v == "" {
				if p.Required {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + p.Name + " parameter"})
					return
				}
				if p.Default == "" {
					continue
				}
				v = p.Default
			}
			name := p.Upstream
			if name == "" {
				name = p.Name
			}
			q.Set(name, v)
		}

		h.relay(c, rt, h.backendURL+rt.Upstream, q, cred)
	}
}

// Generic forwards an arbitrary backend path given via the required `path`
// query parameter. Unlike the named routes it relays the entire inbound
// header set (compatibility shim for legacy pages).
func (h *ProxyHandler) Generic(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path parameter"})
		return
	}
	rt := proxyRoute{Name: "generic", Method: c.Request.Method, ForwardAll: true}
	cred, _ := bearerFromRequest(c)
	h.relay(c, rt, h.backendURL+path, url.Values{}, cred)
}

// relay performs the single upstream attempt and mirrors status + JSON body
// back to the caller. Any local failure collapses into the fixed 500 body;
// the narrow failure kind (build_request, upstream_unreachable,
// malformed_response) is logged and counted but never exposed.
func (h *ProxyHandler) relay(c *gin.Context, rt proxyRoute, upstreamURL string, q url.Values, cred string) {
	started := time.Now()

	var body io.Reader
	if rt.Method == http.MethodPost {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			h.fail(c, rt, "build_request", err)
			return
		}
		body = bytes.NewReader(b)
	}

	if len(q) > 0 {
		upstreamURL += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(c.Request.Context(), rt.Method, upstreamURL, body)
	if err != nil {
		h.fail(c, rt, "build_request", err)
		return
	}

	if rt.ForwardAll {
		for k, vs := range c.Request.Header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		if req.Header.Get("Authorization") == "" && cred != "" {
			req.Header.Set("Authorization", cred)
		}
	} else {
		req.Header.Set("Content-Type", "application/json")
		if cred != "" {
			req.Header.Set("Authorization", cred)
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.fail(c, rt, "upstream_unreachable", err)
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		h.fail(c, rt, "upstream_unreachable", err)
		return
	}
	var parsed interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		h.fail(c, rt, "malformed_response", err)
		return
	}

	metrics.ProxyRelayed.WithLabelValues(rt.Name, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.ProxyDuration.WithLabelValues(rt.Name).Observe(time.Since(started).Seconds())
	c.JSON(resp.StatusCode, parsed)
}

func (h *ProxyHandler) fail(c *gin.Context, rt proxyRoute, kind string, err error) {
	logger.Errorf("proxy %s: %s: %v", rt.Name, kind, err)
	metrics.ProxyFailed.WithLabelValues(rt.Name, kind).Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"error": proxyFailedBody})
}
