package bookings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/httpx"
)

func doJSON(r http.Handler, method, path string, sharer int64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if sharer != 0 {
		req.Header.Set(httpx.HeaderSharerID, strconv.FormatInt(sharer, 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingEndpoints(t *testing.T) {
	e := setup(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, e.svc)

	body := `{"itemId":` + strconv.FormatInt(e.item, 10) + `,"start":"2024-12-12T12:12:12","end":"2024-12-13T13:13:13"}`
	w := doJSON(r, http.MethodPost, "/bookings", e.booker, body)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body)
	}
	var created BookingResponse
	json.Unmarshal(w.Body.Bytes(), &created)
	path := "/bookings/" + strconv.FormatInt(created.ID, 10)

	w = doJSON(r, http.MethodPatch, path+"?approved=true", e.owner, "")
	if w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", w.Code, w.Body)
	}

	w = doJSON(r, http.MethodGet, path, e.booker, "")
	var got map[string]any
	json.Unmarshal(w.Body.Bytes(), &got)
	if got["status"] != "APPROVED" || got["start"] != "2024-12-12T12:12:12" || got["end"] != "2024-12-13T13:13:13" {
		t.Errorf("unexpected booking %s", w.Body)
	}

	w = doJSON(r, http.MethodGet, "/bookings/owner?state=future", e.owner, "")
	var list []BookingResponse
	json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("owner list: got %d %s", w.Code, w.Body)
	}
}

func TestBookingEndpointErrors(t *testing.T) {
	e := setup(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, e.svc)

	tests := []struct {
		name   string
		method string
		path   string
		sharer int64
		status int
		code   apperr.Code
	}{
		{"unknown state", http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", e.booker, http.StatusBadRequest, apperr.CodeInvalidArgument},
		{"wrong user", http.MethodGet, "/bookings", 999, http.StatusForbidden, apperr.CodeWrongUser},
		{"negative from", http.MethodGet, "/bookings?from=-1", e.booker, http.StatusBadRequest, apperr.CodeInvalidArgument},
		{"missing approved", http.MethodPatch, "/bookings/1", e.owner, http.StatusBadRequest, apperr.CodeInvalidArgument},
		{"missing header", http.MethodGet, "/bookings/1", 0, http.StatusBadRequest, apperr.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, tt.sharer, "")
			var body apperr.Body
			json.Unmarshal(w.Body.Bytes(), &body)
			if w.Code != tt.status || body.Error != tt.code {
				t.Errorf("expected %d %s, got %d %s", tt.status, tt.code, w.Code, w.Body)
			}
		})
	}
}
