// Package search builds the case-folded keys used for item text search.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// LIKE のエスケープ文字。MySQL / Postgres / SQLite で共通に使える記号にする
const EscapeChar = "!"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Fold は大文字小文字を区別しない比較用に正規化する
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Key は items.search_key に保存する値
func Key(name, description string) string {
	return Fold(name) + "\n" + Fold(description)
}

// LikePattern は部分一致用のパターン（ESCAPE '!' と組で使う）
func LikePattern(text string) string {
	return "%" + likeEscaper.Replace(Fold(text)) + "%"
}
