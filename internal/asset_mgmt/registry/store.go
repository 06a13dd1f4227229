package registry

import (
	"context"
	"database/sql"
	"errors"

	platformdb "greenfuel-backend/internal/platform/db"
)

type RegistryStore interface {
	Insert(ctx context.Context, m *RegisteredAsset) (int64, error)
	GetBySerial(ctx context.Context, serial string) (*RegisteredAsset, error)
	List(ctx context.Context) ([]RegisteredAsset, error)
	SerialState(ctx context.Context, serial string) (SerialState, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) RegistryStore { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, m *RegisteredAsset) (int64, error) {
	const q = `
	INSERT INTO registered_assets
	(serial_number, asset_make, asset_model, vendor, registration_date, warranty_end_date)
	VALUES (?, ?, ?, ?, COALESCE(?, UTC_DATE()), ?)`

	regDate := any(nil)
	if m.RegistrationDate.Valid {
		regDate = m.RegistrationDate.Time
	}
	warranty := any(nil)
	if m.WarrantyEndDate.Valid {
		warranty = m.WarrantyEndDate.Time
	}

	res, err := s.db.ExecContext(ctx, q,
		m.SerialNumber,
		nullStrOrNil(m.AssetMake),
		nullStrOrNil(m.AssetModel),
		nullStrOrNil(m.Vendor),
		regDate,
		warranty,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetBySerial(ctx context.Context, serial string) (*RegisteredAsset, error) {
	const q = `
	SELECT id, serial_number, asset_make, asset_model, vendor, registration_date, warranty_end_date
	FROM registered_assets WHERE serial_number = ?`
	var m RegisteredAsset
	err := s.db.QueryRowContext(ctx, q, serial).Scan(
		&m.ID, &m.SerialNumber, &m.AssetMake, &m.AssetModel, &m.Vendor,
		&m.RegistrationDate, &m.WarrantyEndDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) List(ctx context.Context) ([]RegisteredAsset, error) {
	const q = `
	SELECT id, serial_number, asset_make, asset_model, vendor, registration_date, warranty_end_date
	FROM registered_assets
	ORDER BY registration_date DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RegisteredAsset
	for rows.Next() {
		var m RegisteredAsset
		if err := rows.Scan(
			&m.ID, &m.SerialNumber, &m.AssetMake, &m.AssetModel, &m.Vendor,
			&m.RegistrationDate, &m.WarrantyEndDate,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SerialState は廃棄・登録・発行の3テーブルを読み取り専用Txでまとめて引く。
// 判定順は Service 側で固定している。
func (s *Store) SerialState(ctx context.Context, serial string) (SerialState, error) {
	var st SerialState
	err := platformdb.ReadOnly(ctx, s.db, func(ctx context.Context, tx platformdb.DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM garbage_assets WHERE serial_number = ?`, serial).Scan(&n); err != nil {
			return err
		}
		st.Disposed = n > 0

		var m RegisteredAsset
		err := tx.QueryRowContext(ctx, `
			SELECT id, serial_number, asset_make, asset_model, vendor, registration_date, warranty_end_date
			FROM registered_assets WHERE serial_number = ?`, serial).Scan(
			&m.ID, &m.SerialNumber, &m.AssetMake, &m.AssetModel, &m.Vendor,
			&m.RegistrationDate, &m.WarrantyEndDate,
		)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if err == nil {
			st.Registered = &m
		}

		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM asset_issues WHERE serial_number = ?`, serial).Scan(&n); err != nil {
			return err
		}
		st.Issued = n > 0
		return nil
	})
	if err != nil {
		return SerialState{}, err
	}
	return st, nil
}

func nullStrOrNil(ns sql.NullString) any {
	if ns.Valid {
		return ns.String
	}
	return nil
}
