// Package slacktest runs a fake Slack Web API that implements enough of
// chat.postMessage to exercise the clients in this module.
package slacktest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const (
	PostMessagePath = "/chat.postMessage"

	MissingChannelMessage = "[ERROR] missing required field: channel"
)

// Request is a chat.postMessage call as seen by the server.
type Request struct {
	Token     string
	Channel   string
	Text      string
	RequestID string
}

// Server accepts a single token and a fixed set of channels.
type Server struct {
	*httptest.Server

	token    string
	channels map[string]bool

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a fake Slack API. Close it when done.
func NewServer(token string, channels ...string) *Server {
	s := &Server{
		token:    token,
		channels: make(map[string]bool, len(channels)),
	}

	for _, ch := range channels {
		s.channels[ch] = true
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))

	return s
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, PostMessagePath) {
		writeJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "unknown_method"})
		return
	}

	req, err := parseRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid_json"})
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	switch {
	case req.Token == "":
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "error": "not_authed"})
	case req.Token != s.token:
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "error": "invalid_auth"})
	case req.Channel == "":
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":    false,
			"error": "invalid_arguments",
			"response_metadata": map[string]any{
				"messages": []string{MissingChannelMessage},
			},
		})
	case !s.channels[req.Channel]:
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "error": "channel_not_found"})
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"channel": req.Channel,
			"ts":      fmt.Sprintf("1700000000.%06d", len(s.Requests())),
			"message": map[string]any{"type": "message", "text": req.Text},
		})
	}
}

func parseRequest(r *http.Request) (Request, error) {
	req := Request{RequestID: r.Header.Get("X-Request-Id")}

	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		req.Token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Channel string `json:"channel"`
			Text    string `json:"text"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return req, err
		}

		req.Channel = body.Channel
		req.Text = body.Text

		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}

	if req.Token == "" {
		req.Token = r.PostForm.Get("token")
	}

	req.Channel = r.PostForm.Get("channel")
	req.Text = r.PostForm.Get("text")

	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
