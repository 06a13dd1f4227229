package issues

import "time"

// ===== Shared field bags =====
// 移転（transfers）側でも同じ組を書き換えるため、型はここで一元定義する。
// 旧実装の「来たフィールドを全部そのまま流す」方式はやめて、列ごとに明示する。

type HolderFields struct {
	Department  *string `json:"department,omitempty"`
	Division    *string `json:"division,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Location    *string `json:"location,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	EmailID     *string `json:"email_id,omitempty"`
	HodName     *string `json:"hod_name,omitempty"`
}

type ChecklistFields struct {
	OperatingSystem         *string `json:"operating_system,omitempty"`
	PrinterConfigured       *string `json:"printer_configured,omitempty"`
	MSOfficeVersion         *string `json:"ms_office_version,omitempty"`
	WindowsUpdate           *string `json:"windows_update,omitempty"`
	LicensedSoftwareName    *string `json:"licensed_software_name,omitempty"`
	LocalAdminRightsRemoved *string `json:"local_admin_rights_removed,omitempty"`
	Antivirus               *string `json:"antivirus,omitempty"`
	LocalAdminPassSet       *string `json:"local_admin_pass_set,omitempty"`
	SAPConfigured           *string `json:"sap_configured,omitempty"`
	BackupConfigured        *string `json:"backup_configured,omitempty"`
	SevenZip                *string `json:"seven_zip,omitempty"`
	Chrome                  *string `json:"chrome,omitempty"`
	OnedriveConfigured      *string `json:"onedrive_configured,omitempty"`
	LaptopBag               *string `json:"laptop_bag,omitempty"`
	RMMAgent                *string `json:"rmm_agent,omitempty"`
	Cleaned                 *string `json:"cleaned,omitempty"`
	PhysicalCondition       *string `json:"physical_condition,omitempty"`
	AssetTag                *string `json:"asset_tag,omitempty"`
}

// ===== Requests =====

type CreateIssueRequest struct {
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	SerialNumber string  `json:"serial_number"`
	AssetType    *string `json:"asset_type,omitempty"`
	AssetCode    *string `json:"asset_code,omitempty"`
	HolderFields
	ChecklistFields
}

// 部分更新。指定された列だけ書き換える（履歴は残らない、移転ではない）。
type UpdateIssueRequest struct {
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	AssetType    *string `json:"asset_type,omitempty"`
	AssetCode    *string `json:"asset_code,omitempty"`
	HolderFields
	ChecklistFields
}

// ===== Responses =====

type IssueResponse struct {
	ID           int64  `json:"id"`
	SerialNumber string `json:"serial_number"`
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`

	Department  *string `json:"department,omitempty"`
	Division    *string `json:"division,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Location    *string `json:"location,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	EmailID     *string `json:"email_id,omitempty"`
	HodName     *string `json:"hod_name,omitempty"`

	AssetType *string `json:"asset_type,omitempty"`
	AssetCode *string `json:"asset_code,omitempty"`

	OperatingSystem         *string `json:"operating_system,omitempty"`
	PrinterConfigured       *string `json:"printer_configured,omitempty"`
	MSOfficeVersion         *string `json:"ms_office_version,omitempty"`
	WindowsUpdate           *string `json:"windows_update,omitempty"`
	LicensedSoftwareName    *string `json:"licensed_software_name,omitempty"`
	LocalAdminRightsRemoved *string `json:"local_admin_rights_removed,omitempty"`
	Antivirus               *string `json:"antivirus,omitempty"`
	LocalAdminPassSet       *string `json:"local_admin_pass_set,omitempty"`
	SAPConfigured           *string `json:"sap_configured,omitempty"`
	BackupConfigured        *string `json:"backup_configured,omitempty"`
	SevenZip                *string `json:"seven_zip,omitempty"`
	Chrome                  *string `json:"chrome,omitempty"`
	OnedriveConfigured      *string `json:"onedrive_configured,omitempty"`
	LaptopBag               *string `json:"laptop_bag,omitempty"`
	RMMAgent                *string `json:"rmm_agent,omitempty"`
	Cleaned                 *string `json:"cleaned,omitempty"`
	PhysicalCondition       *string `json:"physical_condition,omitempty"`
	AssetTag                *string `json:"asset_tag,omitempty"`

	PreviousEmployeeCode *string    `json:"previous_employee_code,omitempty"`
	LastTransferDate     *time.Time `json:"last_transfer_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}
