package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/wcl/internal/models"
	"github.com/google/uuid"
)

// recordedLayout has a fixed width so that recorded_at sorts as text.
const recordedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RecordPick stores a committed bound. A nil at records a cleared bound.
func (s *Store) RecordPick(ctx context.Context, name string, at *time.Time) error {
	_, err := s.AddPick(ctx, models.Pick{Name: models.PickName(name), Date: at})
	return err
}

// AddPick inserts p, assigning an ID and recording time when they are unset.
func (s *Store) AddPick(ctx context.Context, p models.Pick) (models.Pick, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.RecordedAt.IsZero() {
		p.RecordedAt = now().UTC()
	}
	if p.Name == "" {
		return models.Pick{}, wrapErr(ResourcePick, "insert", p.ID, fmt.Errorf("pick name is empty"))
	}
	err := s.withDBContext(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx,
			"INSERT INTO picks (id, name, date, recorded_at) VALUES (?, ?, ?, ?)",
			p.ID, string(p.Name), nullableTime(p.Date), p.RecordedAt.UTC().Format(recordedLayout))
		return wrapErr(ResourcePick, "insert", p.ID, err)
	})
	if err != nil {
		return models.Pick{}, err
	}
	return p, nil
}

// RecentPicks returns up to limit picks, newest first.
func (s *Store) RecentPicks(ctx context.Context, limit int) ([]models.Pick, error) {
	if limit <= 0 {
		return nil, nil
	}
	return withDBContextResult(s, ctx, func(ctx context.Context) ([]models.Pick, error) {
		rows, err := s.DB.QueryContext(ctx,
			"SELECT id, name, date, recorded_at FROM picks ORDER BY recorded_at DESC, rowid DESC LIMIT ?", limit)
		if err != nil {
			return nil, wrapErr(ResourcePick, "list", "", err)
		}
		defer rows.Close()

		var picks []models.Pick
		for rows.Next() {
			p, err := scanPick(rows)
			if err != nil {
				return nil, wrapErr(ResourcePick, "list", "", err)
			}
			picks = append(picks, p)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(ResourcePick, "list", "", err)
		}
		return picks, nil
	})
}

func (s *Store) Pick(ctx context.Context, id string) (models.Pick, error) {
	return withDBContextResult(s, ctx, func(ctx context.Context) (models.Pick, error) {
		row := s.DB.QueryRowContext(ctx, "SELECT id, name, date, recorded_at FROM picks WHERE id = ?", id)
		p, err := scanPick(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Pick{}, wrapErr(ResourcePick, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.Pick{}, wrapErr(ResourcePick, "get", id, err)
		}
		return p, nil
	})
}

// ClearPicks deletes the whole history.
func (s *Store) ClearPicks(ctx context.Context) error {
	return s.withDBContext(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx, "DELETE FROM picks")
		return wrapErr(ResourcePick, "clear", "", err)
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPick(row scanner) (models.Pick, error) {
	var p models.Pick
	var name string
	var date sql.NullString
	var recorded string
	if err := row.Scan(&p.ID, &name, &date, &recorded); err != nil {
		return models.Pick{}, err
	}
	p.Name = models.PickName(name)
	var err error
	if p.Date, err = parseNullableTime(date); err != nil {
		return models.Pick{}, err
	}
	if p.RecordedAt, err = time.Parse(recordedLayout, recorded); err != nil {
		return models.Pick{}, err
	}
	return p, nil
}
