package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mindfulapp/mindful/internal/client/models"
	"github.com/mindfulapp/mindful/internal/common"
)

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": time.Now().Add(ttl).Unix(), "user_id": 1}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestLogin_StoresTokenPair(t *testing.T) {
	access := signedToken(t, time.Hour)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/token/", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds["username"])
		_ = json.NewEncoder(w).Encode(map[string]string{"access": access, "refresh": "r1"})
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL)
	require.NoError(t, c.Login(context.Background(), "alice", "pw"))
	require.Equal(t, access, c.Tokens().Access())
	require.Equal(t, "r1", c.Tokens().Refresh())
}

func TestDo_AttachesBearerAndGeminiKey(t *testing.T) {
	var gotAuth, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("X-Gemini-API-Key")
		_ = json.NewEncoder(w).Encode([]models.Task{})
	}))
	defer srv.Close()

	access := signedToken(t, time.Hour)
	c := NewRESTClient(srv.URL, WithGeminiKey(func() string { return "g-key" }))
	c.Tokens().Set(access, "r1")

	_, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer "+access, gotAuth)
	require.Equal(t, "g-key", gotKey)
}

func TestDo_RefreshesOnceOn401(t *testing.T) {
	var resourceCalls, refreshCalls atomic.Int32
	fresh := signedToken(t, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token/refresh/":
			refreshCalls.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]string{"access": fresh})
		case "/api/tasks/":
			if resourceCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			require.Equal(t, "Bearer "+fresh, r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]models.Task{{ID: "1", Title: "t"}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL)
	c.Tokens().Set(signedToken(t, time.Hour), "refresh-1")

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, int32(1), refreshCalls.Load())
	require.Equal(t, int32(2), resourceCalls.Load())
}

func TestDo_SecondUnauthorizedSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/token/refresh/" {
			_ = json.NewEncoder(w).Encode(map[string]string{"access": signedToken(t, time.Hour)})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL)
	c.Tokens().Set(signedToken(t, time.Hour), "refresh-1")

	_, err := c.ListTasks(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestCreateEntry_StripsClientID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var e map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		require.NotContains(t, e, "id")
		e["id"] = "42"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(e)
	}))
	defer srv.Close()

	c := NewRESTClient(srv.URL)
	out, err := c.CreateEntry(context.Background(), models.JournalEntry{
		ID:      models.NewTempID(),
		Content: "hello",
		Mood:    models.MoodGood,
	})
	require.NoError(t, err)
	require.Equal(t, "42", out.ID)
}

func TestGetConfig_ObjectAndListShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *models.ContentConfig
	}{
		{
			name: "bare object",
			body: `{"id":1,"artStyle":"Noir","captionTone":"Dry","includeAudio":false,"outputFormat":"VIDEO"}`,
			want: &models.ContentConfig{ID: 1, ArtStyle: "Noir", CaptionTone: "Dry", OutputFormat: models.OutputFormatVideo},
		},
		{
			name: "one-element list",
			body: `[{"id":1,"artStyle":"Noir","captionTone":"Dry","includeAudio":false,"outputFormat":"VIDEO"}]`,
			want: &models.ContentConfig{ID: 1, ArtStyle: "Noir", CaptionTone: "Dry", OutputFormat: models.OutputFormatVideo},
		},
		{name: "empty list", body: `[]`, want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			cfg, err := NewRESTClient(srv.URL).GetConfig(context.Background())
			require.NoError(t, err)
			require.Equal(t, tc.want, cfg)
		})
	}
}

func TestStatusToError_Mapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, common.ErrorValidation},
		{http.StatusUnauthorized, common.ErrorUnauthorized},
		{http.StatusForbidden, common.ErrorUnauthorized},
		{http.StatusNotFound, common.ErrorNotFound},
		{http.StatusInternalServerError, common.ErrorInternal},
	}
	for _, tc := range tests {
		err := statusToError(tc.status, []byte(`{"error":"boom"}`))
		require.True(t, errors.Is(err, tc.want), "status %d", tc.status)
		require.Contains(t, err.Error(), "boom")
	}
	require.NoError(t, statusToError(http.StatusNoContent, nil))
}

func TestDeleteTask_UsesResourcePath(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, NewRESTClient(srv.URL).DeleteTask(context.Background(), "7"))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/api/tasks/7/", gotPath)
}
