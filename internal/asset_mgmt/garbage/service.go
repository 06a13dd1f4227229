package garbage

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"greenfuel-backend/internal/asset_mgmt/registry"
)

// ===== Error model (registry/issues/transfers と同型) =====
type Code string

const (
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeAlreadyDisposed      Code = "ALREADY_DISPOSED"
	CodeNotFound             Code = "NOT_FOUND"
	CodeInternal             Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrMissing(msg string) *APIError  { return &APIError{Code: CodeMissingRequiredField, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrAlreadyDisposed(msg string) *APIError {
	return &APIError{Code: CodeAlreadyDisposed, Message: msg}
}
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeMissingRequiredField:
			return 400
		case CodeNotFound:
			return 404
		case CodeAlreadyDisposed:
			return 409
		default:
			return 500
		}
	}
	return 500
}

// ---- Clock & ID ----
type Clock interface{ Now() time.Time }
type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type IDGen interface{ NewULID(t time.Time) string }
type ulidGen struct{}

func (ulidGen) NewULID(t time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// ===== Service =====

type Service struct {
	store GarbageStore
	clock Clock
	id    IDGen
}

func NewService(db *sql.DB) *Service {
	return &Service{
		store: NewStore(db),
		clock: realClock{},
		id:    ulidGen{},
	}
}

func newServiceWithStore(store GarbageStore, clock Clock, id IDGen) *Service {
	return &Service{store: store, clock: clock, id: id}
}

// POST /mark-as-garbage
//
// 廃棄は終端状態への片道遷移。廃棄簿への追記と、貸与・登録情報の削除を
// 1トランザクションで行う。serial_number 主キーの重複（1062）は
// 「すでに廃棄済み」として扱い、二重廃棄を拒否する。
func (s *Service) MarkAsGarbage(ctx context.Context, in MarkAsGarbageRequest) (GarbageAssetResponse, error) {
	serial := registry.NormalizeSerial(in.SerialNumber)
	if serial == "" {
		return GarbageAssetResponse{}, ErrMissing("serial_number is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return GarbageAssetResponse{}, ErrMissing("date is required")
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(in.Date))
	if err != nil {
		return GarbageAssetResponse{}, ErrMissing("date must be YYYY-MM-DD")
	}

	m := &GarbageAsset{
		SerialNumber:        serial,
		DisposalULID:        s.id.NewULID(s.clock.Now()),
		DateMarkedAsGarbage: date,
		AssetType:           toNullString(in.AssetType),
		AssignedDepartment:  toNullString(in.AssignedDepartment),
		ReasonForDisposal:   toNullString(in.ReasonForDisposal),
	}

	if err := s.store.ExecDispose(ctx, m); err != nil {
		var api *APIError
		if errors.As(err, &api) {
			return GarbageAssetResponse{}, api
		}
		log.Printf("[ERROR] dispose tx failed (serial=%s): %v", serial, err)
		return GarbageAssetResponse{}, ErrInternal("failed to mark asset as garbage")
	}
	return m.toDTO(), nil
}

// GET /garbage-assets
func (s *Service) ListGarbageAssets(ctx context.Context) ([]GarbageAssetResponse, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GarbageAssetResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

// ---- helpers ----

func toNullString(s string) (ns sql.NullString) {
	if v := strings.TrimSpace(s); v != "" {
		ns.Valid, ns.String = true, v
	}
	return
}
