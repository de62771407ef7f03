package gateway

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shareit-backend/internal/platform/apperr"
)

var registerOnce sync.Once

// RegisterValidators は gin のバリデータに独自ルールを追加する
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

// notblank: 空白だけの文字列を弾く
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// bindBody は生のボディをデコード・検証する。ボディ自体は後でそのまま転送する。
func bindBody(raw []byte, out any) error {
	if len(raw) == 0 {
		return apperr.ErrInvalid("request body is required")
	}
	if err := binding.JSON.BindBody(raw, out); err != nil {
		return invalidBody(err)
	}
	return nil
}

func invalidBody(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperr.ErrInvalid("invalid json: " + err.Error())
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return apperr.ErrInvalid(strings.Join(msgs, "; "))
}
