package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAuthFailed    = errors.New("authentication failed")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrEmailInUse    = errors.New("email already in use")
)

type Service struct {
	store  AccountStore
	secret []byte
}

// secret は設定ファイル（auth.jwt_secret）から渡す。
func NewService(db *sql.DB, secret string) *Service {
	return &Service{store: NewStore(db), secret: []byte(secret)}
}

func newServiceWithStore(store AccountStore, secret string) *Service {
	return &Service{store: store, secret: []byte(secret)}
}

func (s *Service) Secret() []byte { return s.secret }

// Login はユーザー名とパスワードを検証してJWT(HS256, 24h)を返す。
// 不在も不一致も同じ失敗にする（ユーザー名の在否を漏らさない）。
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	acct, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if acct == nil {
		return "", ErrAuthFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthFailed
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   acct.Username,
		"email": acct.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.secret)
}

// Register は管理者アカウントを追加する（初期セットアップ用）。
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	exists, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists != nil {
		return ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.Create(ctx, &Admin{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// UpdateAccount はメールアドレスとパスワードの部分更新。
// email の UNIQUE 重複（1062）は「他のアカウントが使用中」として返す。
func (s *Service) UpdateAccount(ctx context.Context, username string, email, password *string) error {
	if strings.TrimSpace(username) == "" {
		return ErrNotFound
	}

	var upd AccountUpdate
	if email != nil && strings.TrimSpace(*email) != "" {
		v := strings.TrimSpace(*email)
		upd.Email = &v
	}
	if password != nil && *password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		h := string(hash)
		upd.PasswordHash = &h
	}
	if upd.Email == nil && upd.PasswordHash == nil {
		return nil
	}

	n, err := s.store.Update(ctx, username, upd)
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return ErrEmailInUse
	}
	if err != nil {
		return err
	}
	if n == 0 {
		// 0行更新: アカウント不在か、値が同じだったか
		acct, err := s.store.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if acct == nil {
			return ErrNotFound
		}
	}
	return nil
}
