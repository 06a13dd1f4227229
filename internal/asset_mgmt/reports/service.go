package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ===== Error model =====
// 読み取り専用パッケージなので INTERNAL だけ持つ。

type Code string

const CodeInternal Code = "INTERNAL"

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		return 500
	}
	return 500
}

// ===== Service =====

type Service struct {
	store ReportStore
}

func NewService(db *sql.DB) *Service { return &Service{store: NewStore(db)} }

func newServiceWithStore(store ReportStore) *Service { return &Service{store: store} }

// GET /reports
func (s *Service) Report(ctx context.Context, f ReportFilter) ([]ReportRow, error) {
	rows, err := s.store.Filter(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ReportRow, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDTO())
	}
	return out, nil
}

// GET /dashboard-stats
//
// 貸与中の (機種, 部門) 集計と、未貸与在庫の集計を連結して返す。
func (s *Service) DashboardStats(ctx context.Context) ([]DashboardStat, error) {
	issued, err := s.store.IssuedStats(ctx)
	if err != nil {
		return nil, err
	}
	available, err := s.store.AvailableStats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DashboardStat, 0, len(issued)+len(available))
	out = append(out, issued...)
	out = append(out, available...)
	return out, nil
}

// GET /asset-distribution
func (s *Service) Distribution(ctx context.Context) ([]DistributionSlice, error) {
	return s.store.Distribution(ctx)
}
