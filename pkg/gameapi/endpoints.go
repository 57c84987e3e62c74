package gameapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Typed results for the relay endpoints the pages actually render. Analytics
// payloads are relayed opaquely, so those calls return generic maps.

type Profile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Level      int    `json:"level"`
	TotalScore int    `json:"totalScore"`
	Coins      int    `json:"coins"`
}

type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Period      string `json:"period"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	Completed   bool   `json:"completed"`
	RewardCoins int    `json:"rewardCoins"`
}

type Statistics struct {
	Period      string `json:"period"`
	GamesPlayed int    `json:"gamesPlayed"`
	WordsFound  int    `json:"wordsFound"`
	Score       int    `json:"score"`
	BestWord    string `json:"bestWord"`
	TimePlayed  int    `json:"timePlayedSeconds"`
}

type SessionWord struct {
	Word    string `json:"word"`
	Score   int    `json:"score"`
	FoundAt string `json:"foundAt"`
}

type CurrencyEvent struct {
	Type      string `json:"type"`
	Amount    int    `json:"amount"`
	Timestamp string `json:"timestamp"`
}

type NextReset struct {
	NextReset string `json:"nextReset"`
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.call(ctx, http.MethodGet, "/api/proxy/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Missions(ctx context.Context) ([]Mission, error) {
	var ms []Mission
	if err := c.call(ctx, http.MethodGet, "/api/proxy/missions", nil, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

// CompleteMission reports a finished mission for the given period.
func (c *Client) CompleteMission(ctx context.Context, id, missionID, period string) (map[string]interface{}, error) {
	body, err := json.Marshal(map[string]string{"id": id, "missionId": missionID, "period": period})
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := c.call(ctx, http.MethodPost, "/api/proxy/complete-mission", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) History(ctx context.Context, rng string) ([]Statistics, error) {
	var out []Statistics
	if err := c.call(ctx, http.MethodGet, "/api/proxy/history"+rangeQuery(rng), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SessionWords(ctx context.Context, rng, timezone string) ([]SessionWord, error) {
	q := url.Values{}
	if rng != "" {
		q.Set("range", rng)
	}
	if timezone != "" {
		q.Set("timezone", timezone)
	}
	var out []SessionWord
	if err := c.call(ctx, http.MethodGet, withQuery("/api/proxy/session-words", q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DetailedSessionWords returns the per-session breakdown, relayed opaquely.
func (c *Client) DetailedSessionWords(ctx context.Context, rng, timezone string) ([]map[string]interface{}, error) {
	q := url.Values{}
	if rng != "" {
		q.Set("range", rng)
	}
	if timezone != "" {
		q.Set("timezone", timezone)
	}
	var out []map[string]interface{}
	if err := c.call(ctx, http.MethodGet, withQuery("/api/proxy/session-words/detailed", q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CurrencyHistory(ctx context.Context, typ, limit string) ([]CurrencyEvent, error) {
	q := url.Values{}
	if typ != "" {
		q.Set("type", typ)
	}
	if limit != "" {
		q.Set("limit", limit)
	}
	var out []CurrencyEvent
	if err := c.call(ctx, http.MethodGet, withQuery("/api/proxy/currency-history", q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DailyStatistics(ctx context.Context, date string) (*Statistics, error) {
	return c.statistics(ctx, "/api/proxy/statistics/daily", "date", date)
}

func (c *Client) WeeklyStatistics(ctx context.Context, week string) (*Statistics, error) {
	return c.statistics(ctx, "/api/proxy/statistics/weekly", "week", week)
}

func (c *Client) MonthlyStatistics(ctx context.Context, month string) (*Statistics, error) {
	return c.statistics(ctx, "/api/proxy/statistics/monthly", "month", month)
}

// DetailedStatistics returns the full per-day breakdown, relayed opaquely.
func (c *Client) DetailedStatistics(ctx context.Context, date string) (map[string]interface{}, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var out map[string]interface{}
	if err := c.call(ctx, http.MethodGet, withQuery("/api/proxy/statistics/detailed", q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) statistics(ctx context.Context, path, param, value string) (*Statistics, error) {
	q := url.Values{}
	if value != "" {
		q.Set(param, value)
	}
	var s Statistics
	if err := c.call(ctx, http.MethodGet, withQuery(path, q), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) ThemeAnalytics(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.call(ctx, http.MethodGet, "/api/proxy/theme-analytics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ThemeDay(ctx context.Context, date string) (map[string]interface{}, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var out map[string]interface{}
	if err := c.call(ctx, http.MethodGet, withQuery("/api/proxy/theme-day", q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TimeAnalytics(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.call(ctx, http.MethodGet, "/api/proxy/time-analytics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) NextMissionReset(ctx context.Context) (*NextReset, error) {
	var nr NextReset
	if err := c.call(ctx, http.MethodGet, "/api/proxy/next-reset", nil, &nr); err != nil {
		return nil, err
	}
	return &nr, nil
}

// UpdateUserStats posts an arbitrary stats payload through the generic proxy
// route; the backend owns the interpretation.
func (c *Client) UpdateUserStats(ctx context.Context, stats map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := c.call(ctx, http.MethodPost, "/api/proxy?path="+url.QueryEscape("/user/update-stats"), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WordDefinition looks up a definition for display next to found words. It is
// deliberately best-effort: any failure, of any kind, yields the fixed
// fallback string and no error.
func (c *Client) WordDefinition(ctx context.Context, word string) string {
	const fallback = "No definition found"
	var out struct {
		Definition string `json:"definition"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/proxy/word-definition?word="+url.QueryEscape(word), nil, &out); err != nil {
		return fallback
	}
	if out.Definition == "" {
		return fallback
	}
	return out.Definition
}

func rangeQuery(rng string) string {
	if rng == "" {
		return ""
	}
	return "?range=" + url.QueryEscape(rng)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
