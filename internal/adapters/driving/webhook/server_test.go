package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driving"
)

// fakePublisher records the last memo and returns a canned result.
type fakePublisher struct {
	lastMemo *domain.Memo
	pub      *domain.Publication
	err      error
}

var _ driving.PublishService = (*fakePublisher)(nil)

func (f *fakePublisher) PublishMemo(_ context.Context, memo *domain.Memo) (*domain.Publication, error) {
	f.lastMemo = memo
	if f.err != nil {
		return nil, f.err
	}
	return f.pub, nil
}

func (f *fakePublisher) PublishDocument(ctx context.Context, document, source string) (*domain.Publication, error) {
	return f.PublishMemo(ctx, &domain.Memo{ID: "doc", Text: document, Source: source})
}

func (f *fakePublisher) History(context.Context, int) ([]domain.Publication, error) {
	return nil, domain.ErrNotImplemented
}

func startServer(t *testing.T, config Config, publisher driving.PublishService) *Server {
	t.Helper()
	srv, err := NewServer(config, publisher)
	require.NoError(t, err)
	require.NoError(t, srv.Start())
	t.Cleanup(func() { _ = srv.Stop() })
	return srv
}

func postMemo(t *testing.T, srv *Server, token string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	url := fmt.Sprintf("http://127.0.0.1:%d/v1/memos", srv.Port())
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestNewServer_RequiresPublisher(t *testing.T) {
	_, err := NewServer(Config{}, nil)
	assert.ErrorContains(t, err, "publish service")
}

func TestServer_PublishesMemo(t *testing.T) {
	publisher := &fakePublisher{
		pub: &domain.Publication{
			ID:         "pub-1",
			PageID:     "page-1",
			URL:        "https://www.notion.so/page-1",
			Title:      "Meeting notes",
			BlockCount: 5,
		},
	}
	srv := startServer(t, Config{Token: "hook-secret"}, publisher)

	resp := postMemo(t, srv, "hook-secret", memoRequest{MemoID: "m1", Text: "# Meeting notes", Source: "ios-shortcut"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got publicationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "pub-1", got.PublicationID)
	assert.Equal(t, "page-1", got.PageID)
	assert.Equal(t, "Meeting notes", got.Title)
	assert.Equal(t, 5, got.BlockCount)

	require.NotNil(t, publisher.lastMemo)
	assert.Equal(t, "m1", publisher.lastMemo.ID)
	assert.Equal(t, "ios-shortcut", publisher.lastMemo.Source)
	assert.WithinDuration(t, time.Now(), publisher.lastMemo.ReceivedAt, 5*time.Second)
}

func TestServer_DefaultsMemoIDAndSource(t *testing.T) {
	publisher := &fakePublisher{pub: &domain.Publication{ID: "p"}}
	srv := startServer(t, Config{}, publisher)

	resp := postMemo(t, srv, "", memoRequest{Text: "hello"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NotNil(t, publisher.lastMemo)
	assert.NotEmpty(t, publisher.lastMemo.ID)
	assert.Equal(t, "webhook", publisher.lastMemo.Source)
}

func TestServer_RejectsBadToken(t *testing.T) {
	publisher := &fakePublisher{pub: &domain.Publication{ID: "p"}}
	srv := startServer(t, Config{Token: "right"}, publisher)

	resp := postMemo(t, srv, "wrong", memoRequest{Text: "hello"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, publisher.lastMemo)

	resp = postMemo(t, srv, "", memoRequest{Text: "hello"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_RejectsInvalidJSON(t *testing.T) {
	srv := startServer(t, Config{}, &fakePublisher{pub: &domain.Publication{}})

	url := fmt.Sprintf("http://127.0.0.1:%d/v1/memos", srv.Port())
	resp, err := http.Post(url, "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_RejectsWrongMethod(t *testing.T) {
	srv := startServer(t, Config{}, &fakePublisher{pub: &domain.Publication{}})

	url := fmt.Sprintf("http://127.0.0.1:%d/v1/memos", srv.Port())
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"rate limited", domain.ErrRateLimited, http.StatusServiceUnavailable},
		{"page store down", domain.ErrPageStoreUnavailable, http.StatusBadGateway},
		{"upstream auth", domain.ErrUnauthorised, http.StatusBadGateway},
		{"empty generation", domain.ErrEmptyGeneration, http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := startServer(t, Config{}, &fakePublisher{err: fmt.Errorf("publish: %w", tt.err)})

			resp := postMemo(t, srv, "", memoRequest{Text: "x"})
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var got errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.NotEmpty(t, got.Error)
		})
	}
}

func TestServer_Health(t *testing.T) {
	srv := startServer(t, Config{Token: "secret"}, &fakePublisher{pub: &domain.Publication{}})

	// Health endpoint is unauthenticated.
	url := fmt.Sprintf("http://127.0.0.1:%d/healthz", srv.Port())
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_RandomPort(t *testing.T) {
	srv := startServer(t, Config{Port: 0}, &fakePublisher{pub: &domain.Publication{}})
	assert.NotZero(t, srv.Port())
}
