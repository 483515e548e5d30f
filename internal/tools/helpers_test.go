package tools

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/takashabe/learningsuite-mcp/internal/learningsuite"
)

type apiRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []apiRequest
	status   int
	body     string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, apiRequest{
		Method:   r.Method,
		Path:     r.URL.EscapedPath(),
		RawQuery: r.URL.RawQuery,
		Body:     string(b),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeAPI) last(t *testing.T) apiRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the API")
	return f.requests[len(f.requests)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestDispatcher(t *testing.T, status int, body string) (*Dispatcher, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{status: status, body: body}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := learningsuite.New("test-key",
		learningsuite.WithBaseURL(srv.URL),
		learningsuite.WithHTTPClient(srv.Client()),
	)
	registry, err := NewRegistry(client)
	require.NoError(t, err)

	return NewDispatcher(registry, zerolog.Nop()), api
}
