package transfers

import (
	"time"

	"greenfuel-backend/internal/asset_mgmt/issues"
)

// ===== Requests =====

// 移転元スナップショット。上書き前の保有者情報はこの組でしか残らないので、
// 台帳行はここから作る。
type FromSnapshot struct {
	EmployeeName string  `json:"employee_name_from"`
	EmployeeCode string  `json:"employee_code_from"`
	Department   *string `json:"department_from,omitempty"`
	Division     *string `json:"division_from,omitempty"`
	AssetType    *string `json:"asset_type_from,omitempty"`
	AssetCode    *string `json:"asset_code_from,omitempty"`
	SerialNumber *string `json:"serial_number_from,omitempty"`
}

type TransferRequest struct {
	AssetIssueID int64 `json:"asset_issue_id"`
	FromSnapshot

	EmployeeNameTo string  `json:"employee_name_to"`
	EmployeeCodeTo string  `json:"employee_code_to"`
	DepartmentTo   *string `json:"department_to,omitempty"`
	DivisionTo     *string `json:"division_to,omitempty"`
	DesignationTo  *string `json:"designation_to,omitempty"`
	LocationTo     *string `json:"location_to,omitempty"`
	PhoneNumberTo  *string `json:"phone_number_to,omitempty"`
	EmailIDTo      *string `json:"email_id_to,omitempty"`
	HodNameTo      *string `json:"hod_name_to,omitempty"`

	// チェックリストは移転後の状態をそのまま受ける（サフィックスなし）
	issues.ChecklistFields

	Reason *string `json:"reason,omitempty"`
}

// ===== Responses =====

type TransferResponse struct {
	AssetIssueID     int64     `json:"asset_issue_id"`
	TransferULID     string    `json:"transfer_ulid"`
	EmployeeCodeFrom string    `json:"employee_code_from"`
	EmployeeCodeTo   string    `json:"employee_code_to"`
	TransferDate     time.Time `json:"transfer_date"`
}

type HistoryResponse struct {
	ID           int64  `json:"id"`
	TransferULID string `json:"transfer_ulid"`
	AssetIssueID int64  `json:"asset_issue_id"`

	AssetCode    *string `json:"asset_code,omitempty"`
	AssetType    *string `json:"asset_type,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`

	EmployeeNameFrom string  `json:"employee_name_from"`
	EmployeeCodeFrom string  `json:"employee_code_from"`
	DepartmentFrom   *string `json:"department_from,omitempty"`
	DivisionFrom     *string `json:"division_from,omitempty"`

	EmployeeNameTo string  `json:"employee_name_to"`
	EmployeeCodeTo string  `json:"employee_code_to"`
	DepartmentTo   *string `json:"department_to,omitempty"`
	DivisionTo     *string `json:"division_to,omitempty"`

	Reason       *string   `json:"reason,omitempty"`
	TransferDate time.Time `json:"transfer_date"`
}
