package issues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type IssueStore interface {
	Insert(ctx context.Context, m *Issue) (int64, error)
	GetByID(ctx context.Context, id int64) (*Issue, error)
	Update(ctx context.Context, id int64, in UpdateIssueRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]Issue, error)
	SearchByEmployee(ctx context.Context, term string) (*Issue, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) IssueStore { return &Store{db: db} }

const issueColumns = `
	id, serial_number, employee_name, employee_code,
	department, division, designation, location, phone_number, email_id, hod_name,
	asset_type, asset_code,
	operating_system, printer_configured, ms_office_version, windows_update,
	licensed_software_name, local_admin_rights_removed, antivirus, local_admin_pass_set,
	sap_configured, backup_configured, seven_zip, chrome, onedrive_configured,
	laptop_bag, rmm_agent, cleaned, physical_condition, asset_tag,
	previous_employee_code, last_transfer_date, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIssue(row rowScanner) (*Issue, error) {
	var m Issue
	err := row.Scan(
		&m.ID, &m.SerialNumber, &m.EmployeeName, &m.EmployeeCode,
		&m.Department, &m.Division, &m.Designation, &m.Location, &m.PhoneNumber, &m.EmailID, &m.HodName,
		&m.AssetType, &m.AssetCode,
		&m.OperatingSystem, &m.PrinterConfigured, &m.MSOfficeVersion, &m.WindowsUpdate,
		&m.LicensedSoftwareName, &m.LocalAdminRightsRemoved, &m.Antivirus, &m.LocalAdminPassSet,
		&m.SAPConfigured, &m.BackupConfigured, &m.SevenZip, &m.Chrome, &m.OnedriveConfigured,
		&m.LaptopBag, &m.RMMAgent, &m.Cleaned, &m.PhysicalCondition, &m.AssetTag,
		&m.PreviousEmployeeCode, &m.LastTransferDate, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) Insert(ctx context.Context, m *Issue) (int64, error) {
	const q = `
	INSERT INTO asset_issues
	(serial_number, employee_name, employee_code,
	 department, division, designation, location, phone_number, email_id, hod_name,
	 asset_type, asset_code,
	 operating_system, printer_configured, ms_office_version, windows_update,
	 licensed_software_name, local_admin_rights_removed, antivirus, local_admin_pass_set,
	 sap_configured, backup_configured, seven_zip, chrome, onedrive_configured,
	 laptop_bag, rmm_agent, cleaned, physical_condition, asset_tag,
	 created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`

	res, err := s.db.ExecContext(ctx, q,
		m.SerialNumber, m.EmployeeName, m.EmployeeCode,
		m.Department, m.Division, m.Designation, m.Location, m.PhoneNumber, m.EmailID, m.HodName,
		m.AssetType, m.AssetCode,
		m.OperatingSystem, m.PrinterConfigured, m.MSOfficeVersion, m.WindowsUpdate,
		m.LicensedSoftwareName, m.LocalAdminRightsRemoved, m.Antivirus, m.LocalAdminPassSet,
		m.SAPConfigured, m.BackupConfigured, m.SevenZip, m.Chrome, m.OnedriveConfigured,
		m.LaptopBag, m.RMMAgent, m.Cleaned, m.PhysicalCondition, m.AssetTag,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Issue, error) {
	q := `SELECT` + issueColumns + ` FROM asset_issues WHERE id = ?`
	m, err := scanIssue(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (s *Store) Update(ctx context.Context, id int64, in UpdateIssueRequest) (int64, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, p *string) {
		if p != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *p)
		}
	}

	add("employee_name", in.EmployeeName)
	add("employee_code", in.EmployeeCode)
	add("asset_type", in.AssetType)
	add("asset_code", in.AssetCode)
	add("department", in.Department)
	add("division", in.Division)
	add("designation", in.Designation)
	add("location", in.Location)
	add("phone_number", in.PhoneNumber)
	add("email_id", in.EmailID)
	add("hod_name", in.HodName)
	add("operating_system", in.OperatingSystem)
	add("printer_configured", in.PrinterConfigured)
	add("ms_office_version", in.MSOfficeVersion)
	add("windows_update", in.WindowsUpdate)
	add("licensed_software_name", in.LicensedSoftwareName)
	add("local_admin_rights_removed", in.LocalAdminRightsRemoved)
	add("antivirus", in.Antivirus)
	add("local_admin_pass_set", in.LocalAdminPassSet)
	add("sap_configured", in.SAPConfigured)
	add("backup_configured", in.BackupConfigured)
	add("seven_zip", in.SevenZip)
	add("chrome", in.Chrome)
	add("onedrive_configured", in.OnedriveConfigured)
	add("laptop_bag", in.LaptopBag)
	add("rmm_agent", in.RMMAgent)
	add("cleaned", in.Cleaned)
	add("physical_condition", in.PhysicalCondition)
	add("asset_tag", in.AssetTag)

	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE asset_issues SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM asset_issues WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) List(ctx context.Context) ([]Issue, error) {
	q := `SELECT` + issueColumns + ` FROM asset_issues ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Issue
	for rows.Next() {
		m, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (s *Store) SearchByEmployee(ctx context.Context, term string) (*Issue, error) {
	q := `SELECT` + issueColumns + `
	FROM asset_issues
	WHERE employee_name LIKE ? OR employee_code LIKE ?
	ORDER BY created_at DESC
	LIMIT 1`
	pattern := "%" + term + "%"
	m, err := scanIssue(s.db.QueryRowContext(ctx, q, pattern, pattern))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}
