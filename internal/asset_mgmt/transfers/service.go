package transfers

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

	"greenfuel-backend/internal/asset_mgmt/issues"
)

// ===== Error model (registry/issues/garbage と同型) =====
type Code string

const (
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeNotFound             Code = "NOT_FOUND"
	CodeTransferFailed       Code = "TRANSFER_FAILED"
	CodeInternal             Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string        { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrMissing(msg string) *APIError    { return &APIError{Code: CodeMissingRequiredField, Message: msg} }
func ErrNotFound(msg string) *APIError   { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrTransferFailed(msg string) *APIError {
	return &APIError{Code: CodeTransferFailed, Message: msg}
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
	store TransferStore
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

func newServiceWithStore(store TransferStore, clock Clock, id IDGen) *Service {
	return &Service{store: store, clock: clock, id: id}
}

// POST /transfer-asset
//
// 保有者の全面上書きと台帳追記を1トランザクションで行う。
// 台帳は上書き前の保有者が残る唯一の記録なので、片方だけ通った状態は
// 復旧不能なデータ破損になる。両方成功か、両方なかったことにするか。
func (s *Service) Transfer(ctx context.Context, in TransferRequest) (TransferResponse, error) {
	if in.AssetIssueID == 0 {
		return TransferResponse{}, ErrMissing("asset_issue_id is required")
	}
	if strings.TrimSpace(in.EmployeeNameTo) == "" || strings.TrimSpace(in.EmployeeCodeTo) == "" {
		return TransferResponse{}, ErrMissing("employee_name_to and employee_code_to are required")
	}

	now := s.clock.Now()
	tuid := s.id.NewULID(now)

	upd := HolderUpdate{
		EmployeeName:         strings.TrimSpace(in.EmployeeNameTo),
		EmployeeCode:         strings.TrimSpace(in.EmployeeCodeTo),
		Department:           toNullString(in.DepartmentTo),
		Division:             toNullString(in.DivisionTo),
		Designation:          toNullString(in.DesignationTo),
		Location:             toNullString(in.LocationTo),
		PhoneNumber:          toNullString(in.PhoneNumberTo),
		EmailID:              toNullString(in.EmailIDTo),
		HodName:              toNullString(in.HodNameTo),
		PreviousEmployeeCode: in.FromSnapshot.EmployeeCode,
		TransferDate:         now,
	}
	applyChecklist(&upd, in.ChecklistFields)

	hist := &HistoryEntry{
		TransferULID:     tuid,
		AssetIssueID:     in.AssetIssueID,
		AssetCode:        toNullString(in.FromSnapshot.AssetCode),
		AssetType:        toNullString(in.FromSnapshot.AssetType),
		SerialNumber:     toNullString(in.FromSnapshot.SerialNumber),
		EmployeeNameFrom: in.FromSnapshot.EmployeeName,
		EmployeeCodeFrom: in.FromSnapshot.EmployeeCode,
		DepartmentFrom:   toNullString(in.FromSnapshot.Department),
		DivisionFrom:     toNullString(in.FromSnapshot.Division),
		EmployeeNameTo:   upd.EmployeeName,
		EmployeeCodeTo:   upd.EmployeeCode,
		DepartmentTo:     upd.Department,
		DivisionTo:       upd.Division,
		Reason:           toNullString(in.Reason),
		TransferDate:     now,
	}

	if err := s.store.ExecTransfer(ctx, in.AssetIssueID, upd, hist); err != nil {
		var api *APIError
		if errors.As(err, &api) {
			return TransferResponse{}, api
		}
		log.Printf("[ERROR] transfer tx failed (issue_id=%d): %v", in.AssetIssueID, err)
		return TransferResponse{}, ErrTransferFailed("failed to transfer asset")
	}

	return TransferResponse{
		AssetIssueID:     in.AssetIssueID,
		TransferULID:     tuid,
		EmployeeCodeFrom: in.FromSnapshot.EmployeeCode,
		EmployeeCodeTo:   upd.EmployeeCode,
		TransferDate:     now,
	}, nil
}

// GET /transfer-history
func (s *Service) ListHistory(ctx context.Context) ([]HistoryResponse, error) {
	rows, err := s.store.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

// ---- helpers ----

func applyChecklist(u *HolderUpdate, f issues.ChecklistFields) {
	u.OperatingSystem = toNullString(f.OperatingSystem)
	u.PrinterConfigured = toNullString(f.PrinterConfigured)
	u.MSOfficeVersion = toNullString(f.MSOfficeVersion)
	u.WindowsUpdate = toNullString(f.WindowsUpdate)
	u.LicensedSoftwareName = toNullString(f.LicensedSoftwareName)
	u.LocalAdminRightsRemoved = toNullString(f.LocalAdminRightsRemoved)
	u.Antivirus = toNullString(f.Antivirus)
	u.LocalAdminPassSet = toNullString(f.LocalAdminPassSet)
	u.SAPConfigured = toNullString(f.SAPConfigured)
	u.BackupConfigured = toNullString(f.BackupConfigured)
	u.SevenZip = toNullString(f.SevenZip)
	u.Chrome = toNullString(f.Chrome)
	u.OnedriveConfigured = toNullString(f.OnedriveConfigured)
	u.LaptopBag = toNullString(f.LaptopBag)
	u.RMMAgent = toNullString(f.RMMAgent)
	u.Cleaned = toNullString(f.Cleaned)
	u.PhysicalCondition = toNullString(f.PhysicalCondition)
	u.AssetTag = toNullString(f.AssetTag)
}

func toNullString(p *string) (ns sql.NullString) {
	if p != nil && strings.TrimSpace(*p) != "" {
		ns.Valid, ns.String = true, *p
	}
	return
}
