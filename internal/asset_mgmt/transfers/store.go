package transfers

import (
	"context"
	"database/sql"
	"errors"

	platformdb "greenfuel-backend/internal/platform/db"
)

type TransferStore interface {
	ExecTransfer(ctx context.Context, issueID int64, upd HolderUpdate, hist *HistoryEntry) error
	ListHistory(ctx context.Context) ([]HistoryEntry, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) TransferStore { return &Store{db: db} }

// ExecTransfer は移転の原子的単位。
//  1. 対象行をロックして存在確認（idとserial_numberの紐付けはそのまま）
//  2. 保有者・チェックリスト列を全面上書き
//  3. 台帳へ1行追記
//
// どこで失敗しても全体がロールバックされる。
func (s *Store) ExecTransfer(ctx context.Context, issueID int64, upd HolderUpdate, hist *HistoryEntry) error {
	return platformdb.ReadCommitted(ctx, s.db, func(ctx context.Context, tx platformdb.DBTX) error {
		var serial string
		err := tx.QueryRowContext(ctx,
			`SELECT serial_number FROM asset_issues WHERE id = ? FOR UPDATE`, issueID).Scan(&serial)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound("asset issue not found")
		}
		if err != nil {
			return err
		}

		const qUpd = `
		UPDATE asset_issues SET
			employee_name = ?, employee_code = ?,
			department = ?, division = ?, designation = ?, location = ?,
			phone_number = ?, email_id = ?, hod_name = ?,
			operating_system = ?, printer_configured = ?, ms_office_version = ?, windows_update = ?,
			licensed_software_name = ?, local_admin_rights_removed = ?, antivirus = ?, local_admin_pass_set = ?,
			sap_configured = ?, backup_configured = ?, seven_zip = ?, chrome = ?, onedrive_configured = ?,
			laptop_bag = ?, rmm_agent = ?, cleaned = ?, physical_condition = ?, asset_tag = ?,
			previous_employee_code = ?, last_transfer_date = ?
		WHERE id = ?`

		if _, err := tx.ExecContext(ctx, qUpd,
			upd.EmployeeName, upd.EmployeeCode,
			upd.Department, upd.Division, upd.Designation, upd.Location,
			upd.PhoneNumber, upd.EmailID, upd.HodName,
			upd.OperatingSystem, upd.PrinterConfigured, upd.MSOfficeVersion, upd.WindowsUpdate,
			upd.LicensedSoftwareName, upd.LocalAdminRightsRemoved, upd.Antivirus, upd.LocalAdminPassSet,
			upd.SAPConfigured, upd.BackupConfigured, upd.SevenZip, upd.Chrome, upd.OnedriveConfigured,
			upd.LaptopBag, upd.RMMAgent, upd.Cleaned, upd.PhysicalCondition, upd.AssetTag,
			upd.PreviousEmployeeCode, upd.TransferDate,
			issueID,
		); err != nil {
			return err
		}

		const qHist = `
		INSERT INTO transfer_history
		(transfer_ulid, asset_issue_id, asset_code, asset_type, serial_number,
		 employee_name_from, employee_code_from, department_from, division_from,
		 employee_name_to, employee_code_to, department_to, division_to,
		 reason, transfer_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		res, err := tx.ExecContext(ctx, qHist,
			hist.TransferULID, hist.AssetIssueID, hist.AssetCode, hist.AssetType, hist.SerialNumber,
			hist.EmployeeNameFrom, hist.EmployeeCodeFrom, hist.DepartmentFrom, hist.DivisionFrom,
			hist.EmployeeNameTo, hist.EmployeeCodeTo, hist.DepartmentTo, hist.DivisionTo,
			hist.Reason, hist.TransferDate,
		)
		if err != nil {
			return err
		}
		id, _ := res.LastInsertId()
		hist.ID = id
		return nil
	})
}

func (s *Store) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	const q = `
	SELECT id, transfer_ulid, asset_issue_id, asset_code, asset_type, serial_number,
	       employee_name_from, employee_code_from, department_from, division_from,
	       employee_name_to, employee_code_to, department_to, division_to,
	       reason, transfer_date
	FROM transfer_history
	ORDER BY transfer_date DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var m HistoryEntry
		if err := rows.Scan(
			&m.ID, &m.TransferULID, &m.AssetIssueID, &m.AssetCode, &m.AssetType, &m.SerialNumber,
			&m.EmployeeNameFrom, &m.EmployeeCodeFrom, &m.DepartmentFrom, &m.DivisionFrom,
			&m.EmployeeNameTo, &m.EmployeeCodeTo, &m.DepartmentTo, &m.DivisionTo,
			&m.Reason, &m.TransferDate,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
