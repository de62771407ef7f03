package httpx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
)

// NewEngine はサーバ・ゲートウェイ共通のミドルウェア構成で gin.Engine を作る
func NewEngine(dev bool) *gin.Engine {
	if dev {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(RequestID())
	r.Use(gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		return fmt.Sprintf("[GIN] %s | %3d | %13v | %s | %-7s %#v | req=%s\n",
			p.TimeStamp.Format(time.RFC3339),
			p.StatusCode,
			p.Latency,
			p.ClientIP,
			p.Method,
			p.Path,
			p.Keys[CtxRequestIDKey],
		)
	}))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		WriteError(c, apperr.ErrInternal(""))
	}))
	_ = r.SetTrustedProxies(nil)

	if dev {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", HeaderSharerID, HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", HeaderRequestID},
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.NoRoute(func(c *gin.Context) {
		WriteError(c, apperr.ErrNotFound("no route for "+c.Request.Method+" "+c.Request.URL.Path))
	})
	return r
}
