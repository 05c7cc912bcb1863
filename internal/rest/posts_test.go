package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dailyjournal/journal/journal/application"
	"github.com/dailyjournal/journal/journal/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := persistence.NewDocumentPostRepository(filepath.Join(t.TempDir(), "db.json"))
	service := application.NewPostService(repo)

	router := gin.New()
	NewApi(router, service)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createPost(t *testing.T, router *gin.Engine, payload string) map[string]any {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/api/posts", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, true, body["ok"])

	// Timestamps have millisecond precision; keep consecutive creations
	// from tying on date so newest-first assertions are deterministic.
	time.Sleep(2 * time.Millisecond)

	return body["post"].(map[string]any)
}

func TestCreatePost(t *testing.T) {
	router := newTestRouter(t)

	post := createPost(t, router, `{"headline":"Breaking News","author":"jo"}`)

	assert.NotEmpty(t, post["id"])
	assert.Equal(t, "Breaking News", post["headline"])
	assert.Equal(t, "jo", post["author"])
	assert.Equal(t, "EXCLUSIVE", post["category"])
	assert.Equal(t, "", post["deck"])
	assert.Equal(t, post["date"], post["updated_at"])
}

func TestCreatePost_HeadlineRequired(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "Missing headline", payload: `{"author":"jo"}`},
		{name: "Empty headline", payload: `{"headline":""}`},
		{name: "Whitespace headline", payload: `{"headline":"   "}`},
		{name: "Malformed JSON body", payload: `{not json`},
		{name: "Empty body", payload: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/api/posts", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, "Headline required", body["error"])
		})
	}
}

func TestGetPost(t *testing.T) {
	router := newTestRouter(t)
	created := createPost(t, router, `{"headline":"X"}`)

	w := performRequest(router, http.MethodGet, "/api/posts/"+created["id"].(string), "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, created, body["post"])
}

func TestGetPost_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/api/posts/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Not found", body["error"])
}

func TestListPosts(t *testing.T) {
	router := newTestRouter(t)
	createPost(t, router, `{"headline":"Hello World","category":"A"}`)
	createPost(t, router, `{"headline":"Second","category":"B","body":"needle in here"}`)
	createPost(t, router, `{"headline":"Third","category":"A"}`)

	tests := []struct {
		name          string
		query         string
		wantHeadlines []string
	}{
		{
			name:          "All posts",
			query:         "",
			wantHeadlines: []string{"Third", "Second", "Hello World"},
		},
		{
			name:          "ALL category sentinel",
			query:         "?category=ALL",
			wantHeadlines: []string{"Third", "Second", "Hello World"},
		},
		{
			name:          "Category filter",
			query:         "?category=A",
			wantHeadlines: []string{"Third", "Hello World"},
		},
		{
			name:          "Case-insensitive search on headline",
			query:         "?search=WORLD",
			wantHeadlines: []string{"Hello World"},
		},
		{
			name:          "Search on body",
			query:         "?search=NEEDLE",
			wantHeadlines: []string{"Second"},
		},
		{
			name:          "Category and search combined",
			query:         "?category=A&search=third",
			wantHeadlines: []string{"Third"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, "/api/posts"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			body := decodeBody(t, w)
			require.Equal(t, true, body["ok"])

			posts := body["posts"].([]any)
			require.Len(t, posts, len(tt.wantHeadlines))
			for i, want := range tt.wantHeadlines {
				assert.Equal(t, want, posts[i].(map[string]any)["headline"])
			}
		})
	}
}

func TestListPosts_EmptyCollection(t *testing.T) {
	router := newTestRouter(t)

	w := performRequest(router, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Len(t, body["posts"], 0)
}

func TestUpdatePost(t *testing.T) {
	router := newTestRouter(t)
	created := createPost(t, router, `{"headline":"before","category":"A"}`)
	id := created["id"].(string)

	w := performRequest(router, http.MethodPut, "/api/posts/"+id, `{"headline":"after","body":"edited"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, true, body["ok"])

	post := body["post"].(map[string]any)
	assert.Equal(t, id, post["id"])
	assert.Equal(t, "after", post["headline"])
	assert.Equal(t, "edited", post["body"])
	assert.Equal(t, "EXCLUSIVE", post["category"], "defaults apply on update too")
	assert.Equal(t, created["date"], post["date"], "creation date is immutable")
}

func TestUpdatePost_Failures(t *testing.T) {
	router := newTestRouter(t)
	created := createPost(t, router, `{"headline":"X"}`)
	id := created["id"].(string)

	w := performRequest(router, http.MethodPut, "/api/posts/missing", `{"headline":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decodeBody(t, w)["error"])

	w = performRequest(router, http.MethodPut, "/api/posts/"+id, `{"headline":" "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Headline required", decodeBody(t, w)["error"])
}

func TestDeletePost(t *testing.T) {
	router := newTestRouter(t)
	created := createPost(t, router, `{"headline":"X"}`)
	id := created["id"].(string)

	w := performRequest(router, http.MethodDelete, "/api/posts/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"ok": true}, decodeBody(t, w))

	w = performRequest(router, http.MethodGet, "/api/posts/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodDelete, "/api/posts/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
