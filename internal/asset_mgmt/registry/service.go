package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"golang.org/x/text/unicode/norm"
)

// ===== Error model (issues/transfers/garbage と同型) =====
type Code string

const (
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeDuplicateSerial      Code = "DUPLICATE_SERIAL"
	CodeNotFound             Code = "NOT_FOUND"
	CodeInternal             Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string          { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrMissing(msg string) *APIError      { return &APIError{Code: CodeMissingRequiredField, Message: msg} }
func ErrDuplicate(msg string) *APIError    { return &APIError{Code: CodeDuplicateSerial, Message: msg} }
func ErrNotFound(msg string) *APIError     { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string) *APIError     { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeMissingRequiredField:
			return 400
		case CodeNotFound:
			return 404
		case CodeDuplicateSerial:
			return 409
		default:
			return 500
		}
	}
	return 500
}

// NormalizeSerial folds a serial number the way it is stored:
// NFKC（全角→半角など）で正規化して前後空白を落とし、大文字に揃える。
// issues/garbage 側も同じ正規化を通すこと。
func NormalizeSerial(s string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFKC.String(s)))
}

// ===== Service =====

type Service struct {
	store RegistryStore
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db)}
}

func newServiceWithStore(store RegistryStore) *Service {
	return &Service{store: store}
}

// POST /register-asset
func (s *Service) RegisterAsset(ctx context.Context, in RegisterAssetRequest) (RegisteredAssetResponse, error) {
	serial := NormalizeSerial(in.SerialNumber)
	if serial == "" {
		return RegisteredAssetResponse{}, ErrMissing("serial_number is required")
	}

	m := &RegisteredAsset{
		SerialNumber: serial,
		AssetMake:    toNullString(in.AssetMake),
		AssetModel:   toNullString(in.AssetModel),
		Vendor:       toNullString(in.Vendor),
	}

	// 日付は "2006-01-02"、空欄は未設定（NULL）として保存する
	if d, ok, err := parseDate(in.RegistrationDate); err != nil {
		return RegisteredAssetResponse{}, ErrMissing("registration_date must be YYYY-MM-DD")
	} else if ok {
		m.RegistrationDate = sql.NullTime{Time: d, Valid: true}
	}
	if d, ok, err := parseDate(in.WarrantyEndDate); err != nil {
		return RegisteredAssetResponse{}, ErrMissing("warranty_end_date must be YYYY-MM-DD")
	} else if ok {
		m.WarrantyEndDate = sql.NullTime{Time: d, Valid: true}
	}

	id, err := s.store.Insert(ctx, m)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return RegisteredAssetResponse{}, ErrDuplicate("an asset with this serial number is already registered")
		}
		var api *APIError
		if errors.As(err, &api) {
			return RegisteredAssetResponse{}, api
		}
		return RegisteredAssetResponse{}, err
	}
	m.ID = id
	return m.toDTO(), nil
}

// GET /registered-assets
func (s *Service) ListRegisteredAssets(ctx context.Context) ([]RegisteredAssetResponse, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RegisteredAssetResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

// GET /registered-assets/:serial_number
func (s *Service) GetRegisteredAsset(ctx context.Context, serial string) (RegisteredAssetResponse, error) {
	m, err := s.store.GetBySerial(ctx, NormalizeSerial(serial))
	if err != nil {
		return RegisteredAssetResponse{}, err
	}
	if m == nil {
		return RegisteredAssetResponse{}, ErrNotFound("registered asset not found")
	}
	return m.toDTO(), nil
}

// GET /validate-serial/:serial_number
// 発行フォームの事前チェック。判定順は固定:
// 廃棄済み > 未登録 > 発行済み。廃棄は終端状態なので他より優先する。
func (s *Service) ValidateForIssuance(ctx context.Context, serial string) (SerialValidationResponse, error) {
	serial = NormalizeSerial(serial)
	if serial == "" {
		return SerialValidationResponse{}, ErrMissing("serial_number is required")
	}

	st, err := s.store.SerialState(ctx, serial)
	if err != nil {
		return SerialValidationResponse{}, err
	}

	resp := SerialValidationResponse{SerialNumber: serial}
	switch {
	case st.Disposed:
		resp.Reason = ReasonDisposed
	case st.Registered == nil:
		resp.Reason = ReasonNotRegistered
	case st.Issued:
		resp.Reason = ReasonAlreadyIssued
		d := st.Registered.toDTO()
		resp.Details = &d
	default:
		resp.Valid = true
		d := st.Registered.toDTO()
		resp.Details = &d
	}
	return resp, nil
}

// ---- helpers ----

func toNullString(s string) (ns sql.NullString) {
	if strings.TrimSpace(s) != "" {
		ns.Valid, ns.String = true, strings.TrimSpace(s)
	}
	return
}

func parseDate(s string) (time.Time, bool, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
