package issues

import (
	"database/sql"
	"time"
)

// Issue は asset_issues テーブルの1行を表す。
// serial_number は UNIQUE（1シリアルにつき現保有者は常に1人）。
// 行の存在 = 発行中。ステータス列は持たない。
type Issue struct {
	ID           int64
	SerialNumber string

	// holder
	EmployeeName string
	EmployeeCode string
	Department   sql.NullString
	Division     sql.NullString
	Designation  sql.NullString
	Location     sql.NullString
	PhoneNumber  sql.NullString
	EmailID      sql.NullString
	HodName      sql.NullString

	// asset identity shown on the form
	AssetType sql.NullString
	AssetCode sql.NullString

	// configuration checklist
	OperatingSystem        sql.NullString
	PrinterConfigured      sql.NullString
	MSOfficeVersion        sql.NullString
	WindowsUpdate          sql.NullString
	LicensedSoftwareName   sql.NullString
	LocalAdminRightsRemoved sql.NullString
	Antivirus              sql.NullString
	LocalAdminPassSet      sql.NullString
	SAPConfigured          sql.NullString
	BackupConfigured       sql.NullString
	SevenZip               sql.NullString
	Chrome                 sql.NullString
	OnedriveConfigured     sql.NullString
	LaptopBag              sql.NullString
	RMMAgent               sql.NullString
	Cleaned                sql.NullString
	PhysicalCondition      sql.NullString
	AssetTag               sql.NullString

	PreviousEmployeeCode sql.NullString
	LastTransferDate     sql.NullTime
	CreatedAt            time.Time
}

func (m *Issue) toDTO() IssueResponse {
	r := IssueResponse{
		ID:           m.ID,
		SerialNumber: m.SerialNumber,
		EmployeeName: m.EmployeeName,
		EmployeeCode: m.EmployeeCode,
		CreatedAt:    m.CreatedAt,
	}
	r.Department = nullToPtr(m.Department)
	r.Division = nullToPtr(m.Division)
	r.Designation = nullToPtr(m.Designation)
	r.Location = nullToPtr(m.Location)
	r.PhoneNumber = nullToPtr(m.PhoneNumber)
	r.EmailID = nullToPtr(m.EmailID)
	r.HodName = nullToPtr(m.HodName)
	r.AssetType = nullToPtr(m.AssetType)
	r.AssetCode = nullToPtr(m.AssetCode)
	r.OperatingSystem = nullToPtr(m.OperatingSystem)
	r.PrinterConfigured = nullToPtr(m.PrinterConfigured)
	r.MSOfficeVersion = nullToPtr(m.MSOfficeVersion)
	r.WindowsUpdate = nullToPtr(m.WindowsUpdate)
	r.LicensedSoftwareName = nullToPtr(m.LicensedSoftwareName)
	r.LocalAdminRightsRemoved = nullToPtr(m.LocalAdminRightsRemoved)
	r.Antivirus = nullToPtr(m.Antivirus)
	r.LocalAdminPassSet = nullToPtr(m.LocalAdminPassSet)
	r.SAPConfigured = nullToPtr(m.SAPConfigured)
	r.BackupConfigured = nullToPtr(m.BackupConfigured)
	r.SevenZip = nullToPtr(m.SevenZip)
	r.Chrome = nullToPtr(m.Chrome)
	r.OnedriveConfigured = nullToPtr(m.OnedriveConfigured)
	r.LaptopBag = nullToPtr(m.LaptopBag)
	r.RMMAgent = nullToPtr(m.RMMAgent)
	r.Cleaned = nullToPtr(m.Cleaned)
	r.PhysicalCondition = nullToPtr(m.PhysicalCondition)
	r.AssetTag = nullToPtr(m.AssetTag)
	r.PreviousEmployeeCode = nullToPtr(m.PreviousEmployeeCode)
	if m.LastTransferDate.Valid {
		v := m.LastTransferDate.Time
		r.LastTransferDate = &v
	}
	return r
}

func nullToPtr(ns sql.NullString) *string {
	if ns.Valid {
		v := ns.String
		return &v
	}
	return nil
}
