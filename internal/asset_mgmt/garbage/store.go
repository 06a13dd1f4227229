package garbage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	platformdb "greenfuel-backend/internal/platform/db"
)

type GarbageStore interface {
	ExecDispose(ctx context.Context, m *GarbageAsset) error
	List(ctx context.Context) ([]GarbageAsset, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) GarbageStore { return &Store{db: db} }

// ExecDispose は廃棄の原子的単位。
//  1. garbage_assets へ追記（PK重複 = 廃棄済み）
//  2. asset_issues の該当行を削除（貸与されていなければ0行）
//  3. registered_assets の該当行を削除（未登録なら0行）
//
// 2と3は0行でも失敗扱いにしない。どこかでエラーになれば全体がロールバックされる。
func (s *Store) ExecDispose(ctx context.Context, m *GarbageAsset) error {
	return platformdb.ReadCommitted(ctx, s.db, func(ctx context.Context, tx platformdb.DBTX) error {
		const qIns = `
		INSERT INTO garbage_assets
		(serial_number, disposal_ulid, date_marked_as_garbage,
		 asset_type, assigned_department, reason_for_disposal)
		VALUES (?, ?, ?, ?, ?, ?)`

		_, err := tx.ExecContext(ctx, qIns,
			m.SerialNumber, m.DisposalULID, m.DateMarkedAsGarbage,
			m.AssetType, m.AssignedDepartment, m.ReasonForDisposal,
		)
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return ErrAlreadyDisposed("asset is already marked as garbage")
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM asset_issues WHERE serial_number = ?`, m.SerialNumber); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM registered_assets WHERE serial_number = ?`, m.SerialNumber); err != nil {
			return err
		}
		return nil
	})
}

func (s *Store) List(ctx context.Context) ([]GarbageAsset, error) {
	const q = `
	SELECT serial_number, disposal_ulid, date_marked_as_garbage,
	       asset_type, assigned_department, reason_for_disposal
	FROM garbage_assets
	ORDER BY date_marked_as_garbage DESC, serial_number ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GarbageAsset
	for rows.Next() {
		var m GarbageAsset
		if err := rows.Scan(
			&m.SerialNumber, &m.DisposalULID, &m.DateMarkedAsGarbage,
			&m.AssetType, &m.AssignedDepartment, &m.ReasonForDisposal,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
