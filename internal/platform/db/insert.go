package db

import (
	"context"
	"strings"
)

// InsertReturningID は INSERT を実行して採番された id を返す。
// lib/pq は LastInsertId 非対応なので postgres だけ RETURNING を付ける。
func InsertReturningID(ctx context.Context, ext DBTX, query string, args ...any) (int64, error) {
	query = ext.Rebind(query)
	if ext.DriverName() == DriverPostgres {
		var id int64
		q := strings.TrimRight(strings.TrimSpace(query), ";") + " RETURNING id"
		if err := ext.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
