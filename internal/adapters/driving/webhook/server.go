// Package webhook provides the HTTP intake server for memo publishing.
// Transcription services POST finished memos here and get back a
// reference to the published page.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driving"
	"github.com/inklet-labs/inklet/internal/logger"
)

// maxBodyBytes bounds the accepted request body. Transcripts are text;
// anything past this is not a memo.
const maxBodyBytes = 1 << 20

// Config holds webhook server configuration.
type Config struct {
	// Port to listen on. 0 picks a random available port.
	Port int
	// Token is the bearer token required on every request.
	// Empty disables authentication (local use only).
	Token string
}

// Server receives memos over HTTP and hands them to the publish service.
type Server struct {
	mu        sync.Mutex
	config    Config
	publisher driving.PublishService
	server    *http.Server
	listener  net.Listener
}

// NewServer creates a new webhook server.
func NewServer(config Config, publisher driving.PublishService) (*Server, error) {
	if publisher == nil {
		return nil, fmt.Errorf("webhook: publish service is required")
	}
	return &Server{
		config:    config,
		publisher: publisher,
	}, nil
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/memos", s.handleMemo)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	addr := fmt.Sprintf("0.0.0.0:%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	// Store the actual port (important when port was 0)
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.config.Port = tcpAddr.Port
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Webhook server: %v", err)
		}
	}()

	logger.Info("Webhook listening on port %d", s.config.Port)
	return nil
}

// Stop shuts down the server, waiting for in-flight requests.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.Port
}

// memoRequest is the intake payload.
type memoRequest struct {
	MemoID string `json:"memo_id,omitempty"`
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// publicationResponse reports the published page back to the caller.
type publicationResponse struct {
	PublicationID string `json:"publication_id"`
	PageID        string `json:"page_id"`
	URL           string `json:"url,omitempty"`
	Title         string `json:"title"`
	BlockCount    int    `json:"block_count"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleMemo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.authorised(r) {
		writeError(w, http.StatusUnauthorized, "invalid or missing bearer token")
		return
	}

	var req memoRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	memo := &domain.Memo{
		ID:         req.MemoID,
		Text:       req.Text,
		Source:     req.Source,
		ReceivedAt: time.Now(),
	}
	if memo.ID == "" {
		memo.ID = uuid.New().String()
	}
	if memo.Source == "" {
		memo.Source = "webhook"
	}

	pub, err := s.publisher.PublishMemo(r.Context(), memo)
	if err != nil {
		logger.Warn("Webhook publish failed for memo %s: %v", memo.ID, err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, publicationResponse{
		PublicationID: pub.ID,
		PageID:        pub.PageID,
		URL:           pub.URL,
		Title:         pub.Title,
		BlockCount:    pub.BlockCount,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authorised checks the bearer token. An empty configured token
// disables the check.
func (s *Server) authorised(r *http.Request) bool {
	if s.config.Token == "" {
		return true
	}
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.config.Token)) == 1
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorised):
		return http.StatusBadGateway // upstream rejected our credentials
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrPageStoreUnavailable), errors.Is(err, domain.ErrLLMUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrEmptyGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
