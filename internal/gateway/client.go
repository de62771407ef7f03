package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
	"shareit-backend/internal/platform/httpx"
)

// Client はバックエンド（server）へそのままリクエストを中継する
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// 中継するレスポンスヘッダ
var relayHeaders = []string{"Content-Type", "Location"}

// Forward はステータスとボディをそのまま返す。到達できなければ 502。
func (cl *Client) Forward(c *gin.Context, body []byte) {
	resp, err := cl.do(c.Request.Context(), c, body)
	if err != nil {
		log.Printf("[WARN] upstream %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		httpx.WriteError(c, apperr.ErrBadGateway("server is unavailable"))
		return
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		httpx.WriteError(c, apperr.ErrBadGateway("reading server response: "+err.Error()))
		return
	}
	for _, h := range relayHeaders {
		if v := resp.Header.Get(h); v != "" {
			c.Header(h, v)
		}
	}
	c.Status(resp.StatusCode)
	if len(payload) > 0 {
		_, _ = c.Writer.Write(payload)
	}
}

func (cl *Client) do(ctx context.Context, c *gin.Context, body []byte) (*http.Response, error) {
	target, err := url.Parse(cl.baseURL + c.Request.URL.Path)
	if err != nil {
		return nil, fmt.Errorf("building upstream url: %w", err)
	}
	target.RawQuery = c.Request.URL.RawQuery

	var rd io.Reader
	if len(body) > 0 {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, c.Request.Method, target.String(), rd)
	if err != nil {
		return nil, err
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if v := c.GetHeader(httpx.HeaderSharerID); v != "" {
		req.Header.Set(httpx.HeaderSharerID, v)
	}
	if id := httpx.RequestIDFrom(c); id != "" {
		req.Header.Set(httpx.HeaderRequestID, id)
	}
	return cl.http.Do(req)
}
