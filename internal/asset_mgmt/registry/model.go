package registry

import "database/sql"

// RegisteredAsset は registered_assets テーブルの1行を表す
type RegisteredAsset struct {
	ID               int64
	SerialNumber     string
	AssetMake        sql.NullString
	AssetModel       sql.NullString
	Vendor           sql.NullString
	RegistrationDate sql.NullTime
	WarrantyEndDate  sql.NullTime
}

// SerialState は検証ゲートが必要とする周辺テーブルの事実のスナップショット
type SerialState struct {
	Disposed   bool
	Registered *RegisteredAsset
	Issued     bool
}

func (m *RegisteredAsset) toDTO() RegisteredAssetResponse {
	r := RegisteredAssetResponse{
		ID:           m.ID,
		SerialNumber: m.SerialNumber,
	}
	if m.AssetMake.Valid {
		v := m.AssetMake.String
		r.AssetMake = &v
	}
	if m.AssetModel.Valid {
		v := m.AssetModel.String
		r.AssetModel = &v
	}
	if m.Vendor.Valid {
		v := m.Vendor.String
		r.Vendor = &v
	}
	if m.RegistrationDate.Valid {
		v := m.RegistrationDate.Time
		r.RegistrationDate = &v
	}
	if m.WarrantyEndDate.Valid {
		v := m.WarrantyEndDate.Time
		r.WarrantyEndDate = &v
	}
	return r
}
