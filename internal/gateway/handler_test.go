package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/clock"
	"shareit-backend/internal/platform/httpx"
	"shareit-backend/internal/testfixtures"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

// fakeServer は受け取ったリクエストを記録して固定の応答を返す
type fakeServer struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{r.Method, r.URL.Path, r.URL.RawQuery, string(b), r.Header.Clone()})
	f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/users/7")
	w.WriteHeader(f.status)
	io.WriteString(w, f.body)
}

func (f *fakeServer) calls() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.requests...)
}

func setup(t *testing.T) (*gin.Engine, *fakeServer) {
	t.Helper()
	fake := &fakeServer{status: http.StatusOK, body: `{"id":7}`}
	upstream := httptest.NewServer(fake)
	t.Cleanup(upstream.Close)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.RequestID())
	h := NewHandler(NewClient(upstream.URL, 2*time.Second), clock.NewManual(testfixtures.ReferenceTime()))
	RegisterRoutes(r, h)
	return r, fake
}

func do(r http.Handler, method, path, sharer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if sharer != "" {
		req.Header.Set(httpx.HeaderSharerID, sharer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForwardsValidRequests(t *testing.T) {
	r, fake := setup(t)

	body := `{"name":"Alice","email":"alice@example.com"}`
	w := do(r, http.MethodPost, "/users", "", body)
	if w.Code != http.StatusOK || w.Body.String() != `{"id":7}` {
		t.Fatalf("expected relayed response, got %d %s", w.Code, w.Body)
	}
	if w.Header().Get("Location") != "/users/7" {
		t.Errorf("Location not relayed: %q", w.Header().Get("Location"))
	}

	w = do(r, http.MethodGet, "/bookings/owner?state=current&from=0&size=10", "3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list bookings: got %d %s", w.Code, w.Body)
	}

	calls := fake.calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", len(calls))
	}
	if calls[0].Method != http.MethodPost || calls[0].Path != "/users" || calls[0].Body != body {
		t.Errorf("unexpected forwarded create %+v", calls[0])
	}
	if calls[0].Header.Get(httpx.HeaderRequestID) == "" {
		t.Error("request id should be propagated")
	}
	if calls[1].Path != "/bookings/owner" || calls[1].Query != "state=current&from=0&size=10" ||
		calls[1].Header.Get(httpx.HeaderSharerID) != "3" {
		t.Errorf("unexpected forwarded list %+v", calls[1])
	}
}

func TestRelaysServerErrors(t *testing.T) {
	r, fake := setup(t)
	fake.status = http.StatusConflict
	fake.body = `{"error":"CONFLICT","description":"email taken"}`

	w := do(r, http.MethodPost, "/users", "", `{"name":"Alice","email":"alice@example.com"}`)
	if w.Code != http.StatusConflict || w.Body.String() != fake.body {
		t.Errorf("expected relayed 409, got %d %s", w.Code, w.Body)
	}
}

func TestRejectsInvalidRequests(t *testing.T) {
	r, fake := setup(t)

	tests := []struct {
		name   string
		method string
		path   string
		sharer string
		body   string
	}{
		{"blank user name", http.MethodPost, "/users", "", `{"name":"  ","email":"a@example.com"}`},
		{"bad email", http.MethodPost, "/users", "", `{"name":"A","email":"nope"}`},
		{"bad patch email", http.MethodPatch, "/users/1", "", `{"email":"nope"}`},
		{"bad path id", http.MethodGet, "/users/0", "", ""},
		{"missing sharer", http.MethodPost, "/items", "", `{"name":"Drill","description":"d","available":true}`},
		{"negative sharer", http.MethodGet, "/items", "-1", ""},
		{"missing available", http.MethodPost, "/items", "1", `{"name":"Drill","description":"d"}`},
		{"blank comment", http.MethodPost, "/items/1/comment", "1", `{"text":""}`},
		{"start in the past", http.MethodPost, "/bookings", "1", `{"itemId":1,"start":"2024-11-30T10:00:00","end":"2024-12-02T10:00:00"}`},
		{"start after end", http.MethodPost, "/bookings", "1", `{"itemId":1,"start":"2024-12-03T10:00:00","end":"2024-12-02T10:00:00"}`},
		{"start equals end", http.MethodPost, "/bookings", "1", `{"itemId":1,"start":"2024-12-03T10:00:00","end":"2024-12-03T10:00:00"}`},
		{"missing end", http.MethodPost, "/bookings", "1", `{"itemId":1,"start":"2024-12-03T10:00:00"}`},
		{"missing item id", http.MethodPost, "/bookings", "1", `{"start":"2024-12-03T10:00:00","end":"2024-12-04T10:00:00"}`},
		{"bad approved", http.MethodPatch, "/bookings/1?approved=maybe", "1", ""},
		{"unknown state", http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", "1", ""},
		{"zero size", http.MethodGet, "/requests/all?size=0", "1", ""},
		{"blank request", http.MethodPost, "/requests", "1", `{"description":" "}`},
		{"empty body", http.MethodPost, "/requests", "1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.sharer, tt.body)
			var body apperr.Body
			json.Unmarshal(w.Body.Bytes(), &body)
			if w.Code != http.StatusBadRequest || body.Error != apperr.CodeInvalidArgument {
				t.Errorf("expected 400 INVALID_ARGUMENT, got %d %s", w.Code, w.Body)
			}
		})
	}
	if n := len(fake.calls()); n != 0 {
		t.Errorf("invalid requests must not reach the server, got %d calls", n)
	}
}

func TestUnreachableServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	upstream := httptest.NewServer(http.NotFoundHandler())
	url := upstream.URL
	upstream.Close()

	r := gin.New()
	RegisterRoutes(r, NewHandler(NewClient(url, time.Second), nil))

	w := do(r, http.MethodGet, "/users", "", "")
	var body apperr.Body
	json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusBadGateway || body.Error != apperr.CodeBadGateway {
		t.Errorf("expected 502, got %d %s", w.Code, w.Body)
	}
}

func TestForwardsBookingWrites(t *testing.T) {
	r, fake := setup(t)

	// 開始がちょうど現在時刻でも受け付ける
	body := `{"itemId":1,"start":"2024-12-01T10:00:00","end":"2024-12-02T10:00:00"}`
	if w := do(r, http.MethodPost, "/bookings", "1", body); w.Code != http.StatusOK {
		t.Fatalf("create: got %d %s", w.Code, w.Body)
	}
	if w := do(r, http.MethodPatch, "/bookings/5?approved=false", "2", ""); w.Code != http.StatusOK {
		t.Fatalf("approve: got %d %s", w.Code, w.Body)
	}

	calls := fake.calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", len(calls))
	}
	if calls[0].Path != "/bookings" || calls[0].Body != body {
		t.Errorf("unexpected forwarded create %+v", calls[0])
	}
	if calls[1].Method != http.MethodPatch || calls[1].Path != "/bookings/5" || calls[1].Query != "approved=false" {
		t.Errorf("unexpected forwarded approval %+v", calls[1])
	}
}
