package httpx

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/platform/apperr"
)

// HeaderSharerID は操作主体を表す信頼済みヘッダ
const HeaderSharerID = "X-Sharer-User-Id"

// WriteError は APIError を共通のエラーボディに変換して返す
func WriteError(c *gin.Context, err error) {
	status := apperr.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, apperr.BodyOf(err))
}

// SharerID は必須ヘッダを読み取る。欠落・非数値・0以下は 400。
func SharerID(c *gin.Context) (int64, error) {
	v := strings.TrimSpace(c.GetHeader(HeaderSharerID))
	if v == "" {
		return 0, apperr.ErrInvalid("missing " + HeaderSharerID + " header")
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalid(HeaderSharerID + " must be a positive number")
	}
	return id, nil
}

// OptionalSharerID はヘッダが無ければ 0 を返す
func OptionalSharerID(c *gin.Context) (int64, error) {
	if strings.TrimSpace(c.GetHeader(HeaderSharerID)) == "" {
		return 0, nil
	}
	return SharerID(c)
}

// PathID はパスパラメータを正の整数として読む
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalid(name + " must be a positive number")
	}
	return id, nil
}

// Page は from/size クエリ。Size=0 は無制限。
type Page struct {
	Offset int
	Limit  int
}

func ParsePage(c *gin.Context) (Page, error) {
	var p Page
	if v := c.Query("from"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Page{}, apperr.ErrInvalid("from must be >= 0")
		}
		p.Offset = n
	}
	if v := c.Query("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Page{}, apperr.ErrInvalid("size must be > 0")
		}
		p.Limit = n
	}
	return p, nil
}
