package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/inspect"
	"github.com/matzehuels/depscope/pkg/integrations/gemini"
	"github.com/matzehuels/depscope/pkg/metrics"
)

type fakeInspector struct {
	res  *inspect.Result
	err  error
	urls []string
}

func (f *fakeInspector) Run(_ context.Context, repoURL string) (*inspect.Result, error) {
	f.urls = append(f.urls, repoURL)
	return f.res, f.err
}

type fakeGenerator struct {
	reply string
	err   error
	got   [][]gemini.Content
}

func (f *fakeGenerator) GenerateContent(_ context.Context, contents []gemini.Content) (string, error) {
	f.got = append(f.got, contents)
	return f.reply, f.err
}

func testResult() *inspect.Result {
	return &inspect.Result{
		RunID:     "run-1",
		Owner:     "o",
		Repo:      "r",
		FileType:  "package.json",
		Ecosystem: deps.EcosystemNPM,
		Dependencies: []deps.Dependency{
			{Name: "react", Version: "^18.2.0", LatestVersion: "18.3.1"},
		},
	}
}

func newTestServer(insp Inspector, gen *fakeGenerator, opts ...Option) *Server {
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return New(insp, gen, opts...)
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, r))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeInspector{}, &fakeGenerator{})
	rec := do(t, s, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestInspect(t *testing.T) {
	insp := &fakeInspector{res: testResult()}
	s := newTestServer(insp, &fakeGenerator{})

	rec := do(t, s, http.MethodGet, "/api/inspect?url=https://github.com/o/r", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"https://github.com/o/r"}, insp.urls)

	var got inspect.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	require.Len(t, got.Dependencies, 1)
	assert.Equal(t, "18.3.1", got.Dependencies[0].LatestVersion)
}

func TestInspectMissingURL(t *testing.T) {
	insp := &fakeInspector{}
	s := newTestServer(insp, &fakeGenerator{})

	rec := do(t, s, http.MethodGet, "/api/inspect", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
	assert.Empty(t, insp.urls)
}

func TestInspectErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"invalid input", errors.New(errors.ErrCodeInvalidInput, "Invalid repository URL"), http.StatusBadRequest, "INVALID_INPUT", "Invalid repository URL"},
		{"parse", errors.New(errors.ErrCodeParse, "bad json"), http.StatusUnprocessableEntity, "PARSE_ERROR", "bad json"},
		{"unsupported", errors.New(errors.ErrCodeUnsupportedFormat, "No dependency file found"), http.StatusUnprocessableEntity, "UNSUPPORTED_FORMAT", "No dependency file found"},
		{"lookup", errors.New(errors.ErrCodeLookupFailure, "Failed to fetch vulnerabilities"), http.StatusBadGateway, "LOOKUP_FAILURE", "Failed to fetch vulnerabilities"},
		{"uncoded", io.ErrUnexpectedEOF, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&fakeInspector{err: tt.err}, &fakeGenerator{})
			rec := do(t, s, http.MethodGet, "/api/inspect?url=x", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			e := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, e.Code)
			assert.Equal(t, tt.wantMsg, e.Message)
		})
	}
}

func TestChatSessionLifecycle(t *testing.T) {
	gen := &fakeGenerator{reply: "React is behind."}
	s := newTestServer(&fakeInspector{}, gen)

	rec := do(t, s, http.MethodPost, "/api/chat/sessions", map[string]any{"result": testResult()})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created createSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 1, s.Sessions().Len())

	base := "/api/chat/sessions/" + created.ID
	rec = do(t, s, http.MethodPost, base+"/messages", messageRequest{Message: "Which dependencies are old?"})
	require.Equal(t, http.StatusOK, rec.Code)
	var reply messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "React is behind.", reply.Reply)

	require.Len(t, gen.got, 1)
	prompt := gen.got[0][0].Parts[0].Text
	assert.True(t, strings.Contains(prompt, "Package: react"), prompt)

	rec = do(t, s, http.MethodGet, base+"/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tr transcriptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
	require.Len(t, tr.Messages, 2)
	assert.Equal(t, "Which dependencies are old?", tr.Messages[0].Text)

	rec = do(t, s, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, s.Sessions().Len())

	rec = do(t, s, http.MethodPost, base+"/messages", messageRequest{Message: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestChatErrors(t *testing.T) {
	s := newTestServer(&fakeInspector{}, &fakeGenerator{err: io.ErrUnexpectedEOF})

	rec := do(t, s, http.MethodPost, "/api/chat/sessions", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat/sessions", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/chat/sessions", map[string]any{"result": testResult()})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created createSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(t, s, http.MethodPost, "/api/chat/sessions/"+created.ID+"/messages", messageRequest{Message: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/chat/sessions/"+created.ID+"/messages", messageRequest{Message: "hello"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "LOOKUP_FAILURE", decodeError(t, rec).Code)

	rec = do(t, s, http.MethodDelete, "/api/chat/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	c := metrics.New()
	s := newTestServer(&fakeInspector{res: testResult()}, &fakeGenerator{}, WithMetrics(c))

	do(t, s, http.MethodGet, "/api/inspect?url=x", nil)
	rec := do(t, s, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/inspect",status="200"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(&fakeInspector{}, &fakeGenerator{})
	rec := do(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := newTestServer(&fakeInspector{}, &fakeGenerator{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.ListenAndServe(ctx, "127.0.0.1:0"))
}
