package store

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value; ok is false when the key is missing
// or the lookup fails.
func (s *Store) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := s.withDBContext(ctx, func(ctx context.Context) error {
		return s.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	})
	if err != nil || !value.Valid {
		return "", false
	}
	return value.String, true
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	return s.withDBContext(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx,
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, nullableString(value))
		return wrapErr(ResourceSetting, "set", key, err)
	})
}

func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	return s.withDBContext(ctx, func(ctx context.Context) error {
		res, err := s.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		if err != nil {
			return wrapErr(ResourceSetting, "delete", key, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return wrapErr(ResourceSetting, "delete", key, ErrNotFound)
		}
		return nil
	})
}

// Settings returns every stored key/value pair.
func (s *Store) Settings(ctx context.Context) (map[string]string, error) {
	return withDBContextResult(s, ctx, func(ctx context.Context) (map[string]string, error) {
		rows, err := s.DB.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key")
		if err != nil {
			return nil, wrapErr(ResourceSetting, "list", "", err)
		}
		defer rows.Close()
		out := make(map[string]string)
		for rows.Next() {
			var key string
			var value sql.NullString
			if err := rows.Scan(&key, &value); err != nil {
				return nil, wrapErr(ResourceSetting, "list", "", err)
			}
			out[key] = value.String
		}
		if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, wrapErr(ResourceSetting, "list", "", err)
		}
		return out, nil
	})
}
