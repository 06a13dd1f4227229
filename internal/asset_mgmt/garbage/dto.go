package garbage

import (
	"database/sql"
	"time"
)

// ===== Requests =====

type MarkAsGarbageRequest struct {
	SerialNumber string `json:"serial_number"`
	// "2006-01-02" 形式
	Date               string `json:"date"`
	AssetType          string `json:"asset_type"`
	AssignedDepartment string `json:"assigned_department"`
	ReasonForDisposal  string `json:"reason_for_disposal"`
}

// ===== Responses =====

type GarbageAssetResponse struct {
	SerialNumber        string    `json:"serial_number"`
	DisposalULID        string    `json:"disposal_ulid"`
	DateMarkedAsGarbage time.Time `json:"date_marked_as_garbage"`
	AssetType           *string   `json:"asset_type,omitempty"`
	AssignedDepartment  *string   `json:"assigned_department,omitempty"`
	ReasonForDisposal   *string   `json:"reason_for_disposal,omitempty"`
}

// ===== Model =====

// GarbageAsset は garbage_assets テーブルの1行を表す。
// serial_number が主キー：1つのシリアルは一度しか廃棄できない。
type GarbageAsset struct {
	SerialNumber        string
	DisposalULID        string
	DateMarkedAsGarbage time.Time
	AssetType           sql.NullString
	AssignedDepartment  sql.NullString
	ReasonForDisposal   sql.NullString
}

func (m *GarbageAsset) toDTO() GarbageAssetResponse {
	r := GarbageAssetResponse{
		SerialNumber:        m.SerialNumber,
		DisposalULID:        m.DisposalULID,
		DateMarkedAsGarbage: m.DateMarkedAsGarbage,
	}
	if m.AssetType.Valid {
		v := m.AssetType.String
		r.AssetType = &v
	}
	if m.AssignedDepartment.Valid {
		v := m.AssignedDepartment.String
		r.AssignedDepartment = &v
	}
	if m.ReasonForDisposal.Valid {
		v := m.ReasonForDisposal.String
		r.ReasonForDisposal = &v
	}
	return r
}
