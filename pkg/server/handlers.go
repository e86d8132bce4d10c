package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/depscope/pkg/buildinfo"
	"github.com/matzehuels/depscope/pkg/chat"
	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/inspect"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type createSessionRequest struct {
	Result *inspect.Result `json:"result"`
}

type createSessionResponse struct {
	ID string `json:"id"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

type transcriptResponse struct {
	ID       string      `json:"id"`
	Messages []chat.Line `json:"messages"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	repoURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if repoURL == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing url query parameter"))
		return
	}

	res, err := s.inspector.Run(r.Context(), repoURL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Result == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing result"))
		return
	}

	id := s.sessions.Add(chat.NewSession(s.gen, req.Result.Dependencies))
	s.logger.Debug("chat session created", "id", id, "deps", len(req.Result.Dependencies))
	writeJSON(w, http.StatusCreated, createSessionResponse{ID: id})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req messageRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	reply, err := sess.Send(r.Context(), req.Message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Reply: reply})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	msgs := sess.Transcript()
	if msgs == nil {
		msgs = []chat.Line{}
	}
	writeJSON(w, http.StatusOK, transcriptResponse{ID: sess.ID, Messages: msgs})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its status code. Uncoded errors are logged and
// reported as INTERNAL_ERROR without their details.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		code = errors.ErrCodeInternal
		msg = "internal error"
	} else {
		s.logger.Debug("request failed", "path", r.URL.Path, "code", code, "error", err)
	}
	writeJSON(w, errors.HTTPStatus(err), ErrorResponse{Code: string(code), Message: msg})
}
