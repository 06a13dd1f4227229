package issues

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"

	"greenfuel-backend/internal/asset_mgmt/registry"
)

type Service struct {
	store IssueStore
}

func NewService(db *sql.DB) *Service {
	return &Service{store: NewStore(db)}
}

func newServiceWithStore(store IssueStore) *Service {
	return &Service{store: store}
}

// POST /assets
// 事前検証（validate-serial）はUI側の責務。ここではストアのUNIQUE制約が最終権威で、
// 検証と作成の間のレースは 1062 → DUPLICATE_SERIAL で閉じる。
func (s *Service) CreateIssue(ctx context.Context, in CreateIssueRequest) (IssueResponse, error) {
	if strings.TrimSpace(in.EmployeeName) == "" || strings.TrimSpace(in.EmployeeCode) == "" {
		return IssueResponse{}, ErrMissing("employee_name and employee_code are required")
	}
	serial := registry.NormalizeSerial(in.SerialNumber)
	if serial == "" {
		return IssueResponse{}, ErrMissing("serial_number is required")
	}

	m := &Issue{
		SerialNumber: serial,
		EmployeeName: strings.TrimSpace(in.EmployeeName),
		EmployeeCode: strings.TrimSpace(in.EmployeeCode),
	}
	applyHolder(m, in.HolderFields)
	applyChecklist(m, in.ChecklistFields)
	m.AssetType = ptrToNull(in.AssetType)
	m.AssetCode = ptrToNull(in.AssetCode)

	id, err := s.store.Insert(ctx, m)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return IssueResponse{}, ErrDuplicate("an active issue already exists for this serial number")
		}
		return IssueResponse{}, err
	}

	created, err := s.store.GetByID(ctx, id)
	if err != nil {
		return IssueResponse{}, err
	}
	if created == nil {
		return IssueResponse{}, ErrInternal("created issue not found")
	}
	return created.toDTO(), nil
}

// PUT /assets/:id（単純な訂正。移転ではないので履歴は書かない）
func (s *Service) UpdateIssue(ctx context.Context, id int64, in UpdateIssueRequest) (IssueResponse, error) {
	if in.EmployeeName != nil && strings.TrimSpace(*in.EmployeeName) == "" {
		return IssueResponse{}, ErrMissing("employee_name must not be blank")
	}
	if in.EmployeeCode != nil && strings.TrimSpace(*in.EmployeeCode) == "" {
		return IssueResponse{}, ErrMissing("employee_code must not be blank")
	}

	aff, err := s.store.Update(ctx, id, in)
	if err != nil {
		return IssueResponse{}, err
	}
	if aff == 0 {
		// 0件更新は「行がない」か「変更なし」— 存在確認で切り分ける
		cur, err := s.store.GetByID(ctx, id)
		if err != nil {
			return IssueResponse{}, err
		}
		if cur == nil {
			return IssueResponse{}, ErrNotFound("asset issue not found")
		}
		return cur.toDTO(), nil
	}

	cur, err := s.store.GetByID(ctx, id)
	if err != nil {
		return IssueResponse{}, err
	}
	if cur == nil {
		return IssueResponse{}, ErrNotFound("asset issue not found")
	}
	return cur.toDTO(), nil
}

// DELETE /assets/:id
func (s *Service) DeleteIssue(ctx context.Context, id int64) error {
	aff, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if aff == 0 {
		return ErrNotFound("asset issue not found")
	}
	return nil
}

// GET /assets
func (s *Service) ListIssues(ctx context.Context) ([]IssueResponse, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]IssueResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

// GET /assets/:id
func (s *Service) GetIssue(ctx context.Context, id int64) (IssueResponse, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return IssueResponse{}, err
	}
	if m == nil {
		return IssueResponse{}, ErrNotFound("asset issue not found")
	}
	return m.toDTO(), nil
}

// GET /asset-by-employee?searchTerm=
// 名前か社員コードの部分一致で、直近の発行1件を返す
func (s *Service) FindByEmployee(ctx context.Context, term string) (IssueResponse, error) {
	if strings.TrimSpace(term) == "" {
		return IssueResponse{}, ErrMissing("searchTerm is required")
	}
	m, err := s.store.SearchByEmployee(ctx, strings.TrimSpace(term))
	if err != nil {
		return IssueResponse{}, err
	}
	if m == nil {
		return IssueResponse{}, ErrNotFound("no issued asset found for this employee")
	}
	return m.toDTO(), nil
}

// ---- helpers ----

func applyHolder(m *Issue, f HolderFields) {
	m.Department = ptrToNull(f.Department)
	m.Division = ptrToNull(f.Division)
	m.Designation = ptrToNull(f.Designation)
	m.Location = ptrToNull(f.Location)
	m.PhoneNumber = ptrToNull(f.PhoneNumber)
	m.EmailID = ptrToNull(f.EmailID)
	m.HodName = ptrToNull(f.HodName)
}

func applyChecklist(m *Issue, f ChecklistFields) {
	m.OperatingSystem = ptrToNull(f.OperatingSystem)
	m.PrinterConfigured = ptrToNull(f.PrinterConfigured)
	m.MSOfficeVersion = ptrToNull(f.MSOfficeVersion)
	m.WindowsUpdate = ptrToNull(f.WindowsUpdate)
	m.LicensedSoftwareName = ptrToNull(f.LicensedSoftwareName)
	m.LocalAdminRightsRemoved = ptrToNull(f.LocalAdminRightsRemoved)
	m.Antivirus = ptrToNull(f.Antivirus)
	m.LocalAdminPassSet = ptrToNull(f.LocalAdminPassSet)
	m.SAPConfigured = ptrToNull(f.SAPConfigured)
	m.BackupConfigured = ptrToNull(f.BackupConfigured)
	m.SevenZip = ptrToNull(f.SevenZip)
	m.Chrome = ptrToNull(f.Chrome)
	m.OnedriveConfigured = ptrToNull(f.OnedriveConfigured)
	m.LaptopBag = ptrToNull(f.LaptopBag)
	m.RMMAgent = ptrToNull(f.RMMAgent)
	m.Cleaned = ptrToNull(f.Cleaned)
	m.PhysicalCondition = ptrToNull(f.PhysicalCondition)
	m.AssetTag = ptrToNull(f.AssetTag)
}

func ptrToNull(p *string) (ns sql.NullString) {
	if p != nil && strings.TrimSpace(*p) != "" {
		ns.Valid, ns.String = true, *p
	}
	return
}
