package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

type Admin struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountUpdate は PUT /account の部分更新。nil の項目は触らない。
type AccountUpdate struct {
	Email        *string
	PasswordHash *string
}

type AccountStore interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, a *Admin) error
	Update(ctx context.Context, username string, upd AccountUpdate) (int64, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) AccountStore {
	return &Store{db: db}
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	const q = `
SELECT username, email, password_hash, created_at
FROM admins
WHERE username = ?
LIMIT 1
`
	var a Admin
	err := s.db.QueryRowContext(ctx, q, username).Scan(
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) Create(ctx context.Context, a *Admin) error {
	const q = `
INSERT INTO admins (username, email, password_hash, created_at)
VALUES (?, ?, ?, NOW(6))
`
	_, err := s.db.ExecContext(ctx, q, a.Username, a.Email, a.PasswordHash)
	return err
}

func (s *Store) Update(ctx context.Context, username string, upd AccountUpdate) (int64, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *upd.PasswordHash)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, username)

	q := "UPDATE admins SET " + strings.Join(sets, ", ") + " WHERE username = ?"
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
