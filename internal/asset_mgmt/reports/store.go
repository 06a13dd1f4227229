package reports

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

type ReportStore interface {
	Filter(ctx context.Context, f ReportFilter) ([]reportRecord, error)
	IssuedStats(ctx context.Context) ([]DashboardStat, error)
	AvailableStats(ctx context.Context) ([]DashboardStat, error)
	Distribution(ctx context.Context) ([]DistributionSlice, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) ReportStore { return &Store{db: db} }

// Filter は条件を満たす貸与行を新しい順で返す。
// endDate は「その日を含む」：翌日0時より前、で表現する。
func (s *Store) Filter(ctx context.Context, f ReportFilter) ([]reportRecord, error) {
	q := `
	SELECT id, serial_number, employee_name, employee_code,
	       department, division, designation, location,
	       asset_type, asset_code, previous_employee_code, last_transfer_date, created_at
	FROM asset_issues WHERE 1=1`
	var args []any

	if v := strings.TrimSpace(f.StartDate); v != "" {
		q += " AND created_at >= ?"
		args = append(args, v)
	}
	if v := strings.TrimSpace(f.EndDate); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			q += " AND created_at < ?"
			args = append(args, d.AddDate(0, 0, 1).Format("2006-01-02"))
		}
	}
	if v := strings.TrimSpace(f.Department); v != "" {
		q += " AND department LIKE ?"
		args = append(args, "%"+v+"%")
	}
	if v := strings.TrimSpace(f.User); v != "" {
		q += " AND (employee_name LIKE ? OR employee_code LIKE ?)"
		args = append(args, "%"+v+"%", "%"+v+"%")
	}
	q += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reportRecord
	for rows.Next() {
		var m reportRecord
		if err := rows.Scan(
			&m.ID, &m.SerialNumber, &m.EmployeeName, &m.EmployeeCode,
			&m.Department, &m.Division, &m.Designation, &m.Location,
			&m.AssetType, &m.AssetCode, &m.PreviousEmployeeCode, &m.LastTransferDate, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) IssuedStats(ctx context.Context) ([]DashboardStat, error) {
	const q = `
	SELECT COALESCE(asset_type, 'Unknown') AS device,
	       COALESCE(department, 'Unassigned') AS department,
	       COUNT(*) AS count
	FROM asset_issues
	GROUP BY device, department`
	return s.scanStats(ctx, q)
}

// AvailableStats は登録済みだが貸与行のない資産を在庫として数える。
func (s *Store) AvailableStats(ctx context.Context) ([]DashboardStat, error) {
	const q = `
	SELECT COALESCE(ra.asset_make, 'Unknown') AS device,
	       'IT Stock' AS department,
	       COUNT(*) AS count
	FROM registered_assets ra
	LEFT JOIN asset_issues ai ON ra.serial_number = ai.serial_number
	WHERE ai.id IS NULL
	GROUP BY device`
	return s.scanStats(ctx, q)
}

func (s *Store) scanStats(ctx context.Context, q string) ([]DashboardStat, error) {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DashboardStat
	for rows.Next() {
		var st DashboardStat
		if err := rows.Scan(&st.Device, &st.Department, &st.Count); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *Store) Distribution(ctx context.Context) ([]DistributionSlice, error) {
	const q = `
	SELECT CASE
	           WHEN asset_type IN ('Laptop', 'Desktop', 'Laptop/Desktop') THEN 'Laptops/Desktops'
	           WHEN asset_type = 'Data Card' THEN 'Data Cards'
	           WHEN asset_type = 'Printer' THEN 'Printers'
	           ELSE COALESCE(asset_type, 'Unknown Category')
	       END AS category,
	       COUNT(*) AS count
	FROM asset_issues
	GROUP BY category
	ORDER BY count DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DistributionSlice
	for rows.Next() {
		var sl DistributionSlice
		if err := rows.Scan(&sl.Category, &sl.Count); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}
