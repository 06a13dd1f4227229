package reports

import (
	"database/sql"
	"time"
)

// ===== Requests =====

// GET /reports のクエリパラメータ。全部任意。
type ReportFilter struct {
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Department string `form:"department"`
	User       string `form:"user"`
}

// ===== Responses =====

// 報告書向けの貸与行の射影。チェックリスト列は含めない。
type ReportRow struct {
	ID                   int64      `json:"id"`
	SerialNumber         string     `json:"serial_number"`
	EmployeeName         string     `json:"employee_name"`
	EmployeeCode         string     `json:"employee_code"`
	Department           *string    `json:"department,omitempty"`
	Division             *string    `json:"division,omitempty"`
	Designation          *string    `json:"designation,omitempty"`
	Location             *string    `json:"location,omitempty"`
	AssetType            *string    `json:"asset_type,omitempty"`
	AssetCode            *string    `json:"asset_code,omitempty"`
	PreviousEmployeeCode *string    `json:"previous_employee_code,omitempty"`
	LastTransferDate     *time.Time `json:"last_transfer_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// DashboardStat は (device, department) ごとの台数。
// 貸与中の行と、貸与のない登録済み在庫（department="IT Stock"）を合算して返す。
type DashboardStat struct {
	Device     string `json:"device"`
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// DistributionSlice はカテゴリ別の貸与台数。円グラフ用。
type DistributionSlice struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ---- 内部モデル ----

type reportRecord struct {
	ID                   int64
	SerialNumber         string
	EmployeeName         string
	EmployeeCode         string
	Department           sql.NullString
	Division             sql.NullString
	Designation          sql.NullString
	Location             sql.NullString
	AssetType            sql.NullString
	AssetCode            sql.NullString
	PreviousEmployeeCode sql.NullString
	LastTransferDate     sql.NullTime
	CreatedAt            time.Time
}

func (m *reportRecord) toDTO() ReportRow {
	return ReportRow{
		ID:                   m.ID,
		SerialNumber:         m.SerialNumber,
		EmployeeName:         m.EmployeeName,
		EmployeeCode:         m.EmployeeCode,
		Department:           nullToPtr(m.Department),
		Division:             nullToPtr(m.Division),
		Designation:          nullToPtr(m.Designation),
		Location:             nullToPtr(m.Location),
		AssetType:            nullToPtr(m.AssetType),
		AssetCode:            nullToPtr(m.AssetCode),
		PreviousEmployeeCode: nullToPtr(m.PreviousEmployeeCode),
		LastTransferDate:     nullTimeToPtr(m.LastTransferDate),
		CreatedAt:            m.CreatedAt,
	}
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	v := nt.Time
	return &v
}
