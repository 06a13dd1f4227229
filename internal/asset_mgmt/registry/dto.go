package registry

import "time"

// ===== Requests =====

type RegisterAssetRequest struct {
	SerialNumber string `json:"serial_number"`
	AssetMake    string `json:"asset_make"`
	AssetModel   string `json:"asset_model"`
	Vendor       string `json:"vendor"`
	// "2006-01-02" 形式（空なら登録日はDB側の当日）
	RegistrationDate string `json:"registration_date"`
	WarrantyEndDate  string `json:"warranty_end_date"`
}

// ===== Responses =====

type RegisteredAssetResponse struct {
	ID               int64      `json:"id"`
	SerialNumber     string     `json:"serial_number"`
	AssetMake        *string    `json:"asset_make,omitempty"`
	AssetModel       *string    `json:"asset_model,omitempty"`
	Vendor           *string    `json:"vendor,omitempty"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
	WarrantyEndDate  *time.Time `json:"warranty_end_date,omitempty"`
}

// Validation gate reasons (issuance pre-flight)
type ValidationReason string

const (
	ReasonDisposed      ValidationReason = "DISPOSED"
	ReasonNotRegistered ValidationReason = "NOT_REGISTERED"
	ReasonAlreadyIssued ValidationReason = "ALREADY_ISSUED"
)

type SerialValidationResponse struct {
	SerialNumber string           `json:"serial_number"`
	Valid        bool             `json:"valid"`
	Reason       ValidationReason `json:"reason,omitempty"`
	// ALREADY_ISSUED でも details は返す（UIがメーカー/型番を出せるように）
	Details *RegisteredAssetResponse `json:"details,omitempty"`
}
