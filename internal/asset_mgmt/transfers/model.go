package transfers

import (
	"database/sql"
	"time"
)

// HistoryEntry は transfer_history テーブルの1行を表す。
// 追記専用の台帳で、書き込み後は更新も削除もしない。
type HistoryEntry struct {
	ID           int64
	TransferULID string
	AssetIssueID int64

	AssetCode    sql.NullString
	AssetType    sql.NullString
	SerialNumber sql.NullString

	EmployeeNameFrom string
	EmployeeCodeFrom string
	DepartmentFrom   sql.NullString
	DivisionFrom     sql.NullString

	EmployeeNameTo string
	EmployeeCodeTo string
	DepartmentTo   sql.NullString
	DivisionTo     sql.NullString

	Reason       sql.NullString
	TransferDate time.Time
}

// HolderUpdate は移転時に asset_issues 行へ全面上書きする列の組。
// 指定のない列は NULL に落とす（前保有者の値を残さないため）。
type HolderUpdate struct {
	EmployeeName string
	EmployeeCode string
	Department   sql.NullString
	Division     sql.NullString
	Designation  sql.NullString
	Location     sql.NullString
	PhoneNumber  sql.NullString
	EmailID      sql.NullString
	HodName      sql.NullString

	OperatingSystem         sql.NullString
	PrinterConfigured       sql.NullString
	MSOfficeVersion         sql.NullString
	WindowsUpdate           sql.NullString
	LicensedSoftwareName    sql.NullString
	LocalAdminRightsRemoved sql.NullString
	Antivirus               sql.NullString
	LocalAdminPassSet       sql.NullString
	SAPConfigured           sql.NullString
	BackupConfigured        sql.NullString
	SevenZip                sql.NullString
	Chrome                  sql.NullString
	OnedriveConfigured      sql.NullString
	LaptopBag               sql.NullString
	RMMAgent                sql.NullString
	Cleaned                 sql.NullString
	PhysicalCondition       sql.NullString
	AssetTag                sql.NullString

	PreviousEmployeeCode string
	TransferDate         time.Time
}

func (m *HistoryEntry) toDTO() HistoryResponse {
	r := HistoryResponse{
		ID:               m.ID,
		TransferULID:     m.TransferULID,
		AssetIssueID:     m.AssetIssueID,
		EmployeeNameFrom: m.EmployeeNameFrom,
		EmployeeCodeFrom: m.EmployeeCodeFrom,
		EmployeeNameTo:   m.EmployeeNameTo,
		EmployeeCodeTo:   m.EmployeeCodeTo,
		TransferDate:     m.TransferDate,
	}
	r.AssetCode = nullToPtr(m.AssetCode)
	r.AssetType = nullToPtr(m.AssetType)
	r.SerialNumber = nullToPtr(m.SerialNumber)
	r.DepartmentFrom = nullToPtr(m.DepartmentFrom)
	r.DivisionFrom = nullToPtr(m.DivisionFrom)
	r.DepartmentTo = nullToPtr(m.DepartmentTo)
	r.DivisionTo = nullToPtr(m.DivisionTo)
	r.Reason = nullToPtr(m.Reason)
	return r
}

func nullToPtr(ns sql.NullString) *string {
	if ns.Valid {
		v := ns.String
		return &v
	}
	return nil
}
