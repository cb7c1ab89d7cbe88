package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mindfulapp/mindful/internal/client/models"
	"github.com/mindfulapp/mindful/internal/common"
	"github.com/mindfulapp/mindful/internal/logging"
)

// accessLeeway is how close to expiry the access token may get before we
// refresh it proactively instead of waiting for a 401.
const accessLeeway = 30 * time.Second

// RESTClient talks to the Mindful backend over HTTP/JSON. A bearer token is
// attached to every request once the user is logged in; on 401 the access
// token is refreshed once and the request retried.
type RESTClient struct {
	baseURL   string
	httpc     *http.Client
	tokens    *TokenSource
	geminiKey func() string
	log       logging.Logger
}

type Option func(*RESTClient)

// WithHTTPClient overrides the underlying HTTP client (tests, timeouts).
func WithHTTPClient(h *http.Client) Option {
	return func(c *RESTClient) { c.httpc = h }
}

// WithGeminiKey installs a supplier for the Gemini credential forwarded to
// AI-backed backend endpoints via the X-Gemini-API-Key header. A supplier is
// used (not a value) so settings changes take effect without rebuilding the
// client.
func WithGeminiKey(fn func() string) Option {
	return func(c *RESTClient) { c.geminiKey = fn }
}

// WithLogger overrides the default logger.
func WithLogger(l logging.Logger) Option {
	return func(c *RESTClient) { c.log = l }
}

// WithTokens shares an externally managed token source (e.g. one restored
// from the local cache).
func WithTokens(t *TokenSource) Option {
	return func(c *RESTClient) { c.tokens = t }
}

func NewRESTClient(baseURL string, opts ...Option) *RESTClient {
	c := &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  &TokenSource{},
		log:     logging.NewDefault(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Tokens exposes the token source so the app can persist the session.
func (c *RESTClient) Tokens() *TokenSource { return c.tokens }

// --- auth ---

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (c *RESTClient) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/register/", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *RESTClient) Login(ctx context.Context, username, password string) error {
	var pair tokenPairResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/token/", body, &pair); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.tokens.Set(pair.Access, pair.Refresh)
	return nil
}

// refreshAccess trades the refresh token for a new access token.
func (c *RESTClient) refreshAccess(ctx context.Context) error {
	refresh := c.tokens.Refresh()
	if refresh == "" {
		return common.ErrorUnauthorized
	}
	var pair tokenPairResponse
	status, data, err := c.send(ctx, http.MethodPost, "/api/token/refresh/", map[string]string{"refresh": refresh}, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: refresh rejected", common.ErrorUnauthorized)
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decoding refresh response: %w", err)
	}
	c.tokens.Set(pair.Access, pair.Refresh)
	return nil
}

// --- journal entries ---

func (c *RESTClient) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	if err := c.do(ctx, http.MethodGet, "/api/entries/", nil, &out); err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return out, nil
}

func (c *RESTClient) CreateEntry(ctx context.Context, e models.JournalEntry) (models.JournalEntry, error) {
	e.ID = "" // the collaborator assigns the durable identifier
	var out models.JournalEntry
	if err := c.do(ctx, http.MethodPost, "/api/entries/", e, &out); err != nil {
		return models.JournalEntry{}, fmt.Errorf("creating entry: %w", err)
	}
	return out, nil
}

func (c *RESTClient) UpdateEntry(ctx context.Context, id string, e models.JournalEntry) (models.JournalEntry, error) {
	var out models.JournalEntry
	if err := c.do(ctx, http.MethodPut, "/api/entries/"+id+"/", e, &out); err != nil {
		return models.JournalEntry{}, fmt.Errorf("replacing entry %s: %w", id, err)
	}
	return out, nil
}

func (c *RESTClient) PatchEntry(ctx context.Context, id string, fields map[string]any) (models.JournalEntry, error) {
	var out models.JournalEntry
	if err := c.do(ctx, http.MethodPatch, "/api/entries/"+id+"/", fields, &out); err != nil {
		return models.JournalEntry{}, fmt.Errorf("updating entry %s: %w", id, err)
	}
	return out, nil
}

func (c *RESTClient) DeleteEntry(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/entries/"+id+"/", nil, nil); err != nil {
		return fmt.Errorf("deleting entry %s: %w", id, err)
	}
	return nil
}

// --- tasks ---

func (c *RESTClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/", nil, &out); err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return out, nil
}

func (c *RESTClient) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	t.ID = ""
	var out models.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks/", t, &out); err != nil {
		return models.Task{}, fmt.Errorf("creating task: %w", err)
	}
	return out, nil
}

func (c *RESTClient) PatchTask(ctx context.Context, id string, fields map[string]any) (models.Task, error) {
	var out models.Task
	if err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id+"/", fields, &out); err != nil {
		return models.Task{}, fmt.Errorf("updating task %s: %w", id, err)
	}
	return out, nil
}

func (c *RESTClient) DeleteTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id+"/", nil, nil); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

// --- feed posts ---

func (c *RESTClient) ListPosts(ctx context.Context) ([]models.FeedPost, error) {
	var out []models.FeedPost
	if err := c.do(ctx, http.MethodGet, "/api/posts/", nil, &out); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return out, nil
}

func (c *RESTClient) CreatePost(ctx context.Context, p models.FeedPost) (models.FeedPost, error) {
	p.ID = ""
	var out models.FeedPost
	if err := c.do(ctx, http.MethodPost, "/api/posts/", p, &out); err != nil {
		return models.FeedPost{}, fmt.Errorf("creating post: %w", err)
	}
	return out, nil
}

func (c *RESTClient) PatchPost(ctx context.Context, id string, fields map[string]any) (models.FeedPost, error) {
	var out models.FeedPost
	if err := c.do(ctx, http.MethodPatch, "/api/posts/"+id+"/", fields, &out); err != nil {
		return models.FeedPost{}, fmt.Errorf("updating post %s: %w", id, err)
	}
	return out, nil
}

func (c *RESTClient) DeletePost(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/posts/"+id+"/", nil, nil); err != nil {
		return fmt.Errorf("deleting post %s: %w", id, err)
	}
	return nil
}

// --- friends ---

func (c *RESTClient) ListFriends(ctx context.Context) ([]models.FriendProfile, error) {
	var out []models.FriendProfile
	if err := c.do(ctx, http.MethodGet, "/api/friends/", nil, &out); err != nil {
		return nil, fmt.Errorf("listing friends: %w", err)
	}
	return out, nil
}

func (c *RESTClient) CreateFriend(ctx context.Context, f models.FriendProfile) (models.FriendProfile, error) {
	f.ID = 0
	var out models.FriendProfile
	if err := c.do(ctx, http.MethodPost, "/api/friends/", f, &out); err != nil {
		return models.FriendProfile{}, fmt.Errorf("creating friend: %w", err)
	}
	return out, nil
}

func (c *RESTClient) UpdateFriend(ctx context.Context, id int, f models.FriendProfile) (models.FriendProfile, error) {
	var out models.FriendProfile
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/friends/%d/", id), f, &out); err != nil {
		return models.FriendProfile{}, fmt.Errorf("replacing friend %d: %w", id, err)
	}
	return out, nil
}

func (c *RESTClient) DeleteFriend(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/friends/%d/", id), nil, nil); err != nil {
		return fmt.Errorf("deleting friend %d: %w", id, err)
	}
	return nil
}

// --- content config singleton ---

// GetConfig tolerates both response shapes observed from the collaborator:
// a bare object or a list. A list's first element wins; an empty list (or
// empty body) yields nil so the store can fall back to the default literal.
func (c *RESTClient) GetConfig(ctx context.Context) (*models.ContentConfig, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/config/", nil, &raw); err != nil {
		return nil, fmt.Errorf("getting config: %w", err)
	}
	cfg, err := decodeConfigPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("getting config: %w", err)
	}
	return cfg, nil
}

func decodeConfigPayload(raw json.RawMessage) (*models.ContentConfig, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var list []models.ContentConfig
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}
	var cfg models.ContentConfig
	if err := json.Unmarshal(trimmed, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *RESTClient) PutConfig(ctx context.Context, cfg models.ContentConfig) (models.ContentConfig, error) {
	cfg.ID = models.ContentConfigID
	var out models.ContentConfig
	path := fmt.Sprintf("/api/config/%d/", models.ContentConfigID)
	if err := c.do(ctx, http.MethodPut, path, cfg, &out); err != nil {
		return models.ContentConfig{}, fmt.Errorf("updating config: %w", err)
	}
	return out, nil
}

// --- AI-backed backend endpoints ---

func (c *RESTClient) ProcessEntities(ctx context.Context, entryID string) (EntitySummary, error) {
	var out EntitySummary
	path := "/api/entries/" + entryID + "/process_entities/"
	if err := c.do(ctx, http.MethodPost, path, map[string]any{}, &out); err != nil {
		return EntitySummary{}, fmt.Errorf("processing entities for entry %s: %w", entryID, err)
	}
	return out, nil
}

func (c *RESTClient) SmartFeed(ctx context.Context) (SmartFeedResult, error) {
	var out SmartFeedResult
	if err := c.do(ctx, http.MethodGet, "/api/smart_feed/", nil, &out); err != nil {
		return SmartFeedResult{}, fmt.Errorf("fetching smart feed: %w", err)
	}
	return out, nil
}

// --- transport ---

// do executes one JSON request. On 401 with a refresh token available the
// access token is renewed once and the request replayed; a second 401 is
// surfaced as ErrorUnauthorized.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	if c.tokens.Refresh() != "" && c.tokens.AccessExpired(accessLeeway) {
		if err := c.refreshAccess(ctx); err != nil {
			c.log.Warn(ctx, "proactive token refresh failed", "err", err)
		}
	}

	status, data, err := c.send(ctx, method, path, body, true)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized && c.tokens.Refresh() != "" {
		if err := c.refreshAccess(ctx); err != nil {
			return err
		}
		status, data, err = c.send(ctx, method, path, body, true)
		if err != nil {
			return err
		}
	}
	if err := statusToError(status, data); err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *RESTClient) send(ctx context.Context, method, path string, body any, withAuth bool) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		if access := c.tokens.Access(); access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}
	if c.geminiKey != nil {
		if key := c.geminiKey(); key != "" {
			req.Header.Set("X-Gemini-API-Key", key)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// statusToError maps collaborator status codes to sentinel errors, keeping
// any error detail from the body for the user-facing message.
func statusToError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	detail := errorDetail(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, detail)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s", common.ErrorValidation, detail)
	default:
		return fmt.Errorf("%w: status %d: %s", common.ErrorInternal, status, detail)
	}
}

func errorDetail(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			return payload.Error
		case payload.Detail != "":
			return payload.Detail
		case payload.Details != "":
			return payload.Details
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
