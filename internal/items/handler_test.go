package items

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/clock"
	"shareit-backend/internal/platform/httpx"
	"shareit-backend/internal/testfixtures"
)

func setupRouter(t *testing.T) (*gin.Engine, int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conn := testfixtures.NewTestDB(t)
	owner := testfixtures.User(t, conn, "owner")
	r := gin.New()
	RegisterRoutes(r, NewService(conn, clock.NewManual(testfixtures.ReferenceTime())))
	return r, owner
}

func doJSON(r http.Handler, method, path string, sharer int64, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sharer != 0 {
		req.Header.Set(httpx.HeaderSharerID, strconv.FormatInt(sharer, 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestItemEndpoints(t *testing.T) {
	r, owner := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/items", owner, map[string]any{
		"name": "Drill", "description": "Cordless drill", "available": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body)
	}
	var created ItemResponse
	json.Unmarshal(w.Body.Bytes(), &created)
	if loc := w.Header().Get("Location"); loc != "/items/"+strconv.FormatInt(created.ID, 10) {
		t.Errorf("unexpected Location %q", loc)
	}

	w = doJSON(r, http.MethodGet, "/items/search?text=CORDLESS", 0, nil)
	var found []ItemResponse
	json.Unmarshal(w.Body.Bytes(), &found)
	if w.Code != http.StatusOK || len(found) != 1 || found[0].ID != created.ID {
		t.Errorf("search: got %d %s", w.Code, w.Body)
	}

	w = doJSON(r, http.MethodPatch, "/items/"+strconv.FormatInt(created.ID, 10), owner, map[string]any{"available": false})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/items/"+strconv.FormatInt(created.ID, 10), owner, nil)
	var got map[string]any
	json.Unmarshal(w.Body.Bytes(), &got)
	if got["available"] != false || got["lastBooking"] != nil {
		t.Errorf("unexpected item %v", got)
	}
	if _, ok := got["comments"].([]any); !ok {
		t.Errorf("comments should be a JSON array, got %v", got["comments"])
	}

	w = doJSON(r, http.MethodGet, "/items", owner, nil)
	var list []ItemResponse
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Errorf("expected one item, got %s", w.Body)
	}

	w = doJSON(r, http.MethodDelete, "/items/"+strconv.FormatInt(created.ID, 10), owner, nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete: expected 200, got %d", w.Code)
	}
}

func TestItemEndpointErrors(t *testing.T) {
	r, owner := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/items", 0, map[string]any{"name": "Drill", "description": "d", "available": true})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing header: expected 400, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/items", owner, map[string]any{"name": "Drill", "description": "d"})
	var body apperr.Body
	json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusBadRequest || body.Error != apperr.CodeInvalidArgument {
		t.Errorf("missing available: got %d %s", w.Code, w.Body)
	}

	w = doJSON(r, http.MethodGet, "/items/42", owner, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown item: expected 404, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/items/search", 0, nil)
	if w.Code != http.StatusOK || bytes.TrimSpace(w.Body.Bytes())[0] != '[' {
		t.Errorf("empty search: got %d %s", w.Code, w.Body)
	}

	w = doJSON(r, http.MethodPost, "/items/1/comment", owner, map[string]string{"text": "hi"})
	if w.Code != http.StatusNotFound {
		t.Errorf("comment on unknown item: expected 404, got %d", w.Code)
	}
}
