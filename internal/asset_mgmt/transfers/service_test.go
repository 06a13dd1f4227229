package transfers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransferStore は ExecTransfer の全か無かの性質を模したフェイク。
// histFail を立てると台帳追記の段で失敗し、保有者の書き換えも残らない。
type fakeTransferStore struct {
	holders  map[int64]HolderUpdate
	history  []HistoryEntry
	histFail bool
	notFound bool
}

func newFakeTransferStore() *fakeTransferStore {
	return &fakeTransferStore{holders: map[int64]HolderUpdate{}}
}

func (f *fakeTransferStore) ExecTransfer(_ context.Context, issueID int64, upd HolderUpdate, hist *HistoryEntry) error {
	if f.notFound {
		return ErrNotFound("asset issue not found")
	}
	if f.histFail {
		// ロールバック: 保有者も台帳も一切変更しない
		return errors.New("history insert failed")
	}
	f.holders[issueID] = upd
	hist.ID = int64(len(f.history) + 1)
	f.history = append(f.history, *hist)
	return nil
}

func (f *fakeTransferStore) ListHistory(_ context.Context) ([]HistoryEntry, error) {
	out := make([]HistoryEntry, len(f.history))
	copy(out, f.history)
	return out, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixedID struct{ v string }

func (g fixedID) NewULID(time.Time) string { return g.v }

func strp(s string) *string { return &s }

func TestTransfer_MissingFields(t *testing.T) {
	svc := newServiceWithStore(newFakeTransferStore(), fixedClock{}, fixedID{v: "T1"})

	cases := []struct {
		name string
		req  TransferRequest
	}{
		{"no issue id", TransferRequest{EmployeeNameTo: "Ravi", EmployeeCodeTo: "E300"}},
		{"no recipient name", TransferRequest{AssetIssueID: 7, EmployeeCodeTo: "E300"}},
		{"no recipient code", TransferRequest{AssetIssueID: 7, EmployeeNameTo: "Ravi"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Transfer(context.Background(), tc.req)

			var api *APIError
			require.ErrorAs(t, err, &api)
			assert.Equal(t, CodeMissingRequiredField, api.Code)
		})
	}
}

func TestTransfer_OverwritesHolderAndAppendsLedger(t *testing.T) {
	store := newFakeTransferStore()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newServiceWithStore(store, fixedClock{t: now}, fixedID{v: "01TRANSFERULID"})

	res, err := svc.Transfer(context.Background(), TransferRequest{
		AssetIssueID: 7,
		FromSnapshot: FromSnapshot{
			EmployeeName: "Asha",
			EmployeeCode: "E200",
			Department:   strp("IT"),
			SerialNumber: strp("SN-002"),
		},
		EmployeeNameTo: "Ravi",
		EmployeeCodeTo: "E300",
		DepartmentTo:   strp("Finance"),
		Reason:         strp("role change"),
	})
	require.NoError(t, err)

	assert.Equal(t, "01TRANSFERULID", res.TransferULID)
	assert.Equal(t, "E200", res.EmployeeCodeFrom)
	assert.Equal(t, "E300", res.EmployeeCodeTo)

	// 保有者は移転先の内容で全面上書き、旧コードは previous に退避
	upd := store.holders[7]
	assert.Equal(t, "Ravi", upd.EmployeeName)
	assert.Equal(t, "E300", upd.EmployeeCode)
	assert.Equal(t, "E200", upd.PreviousEmployeeCode)
	assert.Equal(t, now, upd.TransferDate)

	// 台帳はちょうど1行、from/to が揃っている
	require.Len(t, store.history, 1)
	h := store.history[0]
	assert.Equal(t, int64(7), h.AssetIssueID)
	assert.Equal(t, "E200", h.EmployeeCodeFrom)
	assert.Equal(t, "E300", h.EmployeeCodeTo)
	require.True(t, h.Reason.Valid)
	assert.Equal(t, "role change", h.Reason.String)
	require.True(t, h.SerialNumber.Valid)
	assert.Equal(t, "SN-002", h.SerialNumber.String)
}

func TestTransfer_HistoryFailureLeavesStateUntouched(t *testing.T) {
	store := newFakeTransferStore()
	store.holders[7] = HolderUpdate{EmployeeName: "Asha", EmployeeCode: "E200"}
	store.histFail = true
	svc := newServiceWithStore(store, fixedClock{t: time.Now()}, fixedID{v: "T1"})

	_, err := svc.Transfer(context.Background(), TransferRequest{
		AssetIssueID: 7,
		FromSnapshot: FromSnapshot{EmployeeName: "Asha", EmployeeCode: "E200"},
		EmployeeNameTo: "Ravi",
		EmployeeCodeTo: "E300",
	})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeTransferFailed, api.Code)

	// 移転前の保有者のまま、台帳にも何も残らない
	assert.Equal(t, "E200", store.holders[7].EmployeeCode)
	assert.Empty(t, store.history)
}

func TestTransfer_UnknownIssue(t *testing.T) {
	store := newFakeTransferStore()
	store.notFound = true
	svc := newServiceWithStore(store, fixedClock{t: time.Now()}, fixedID{v: "T1"})

	_, err := svc.Transfer(context.Background(), TransferRequest{
		AssetIssueID:   99,
		EmployeeNameTo: "Ravi",
		EmployeeCodeTo: "E300",
	})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeNotFound, api.Code)
}

func TestListHistory(t *testing.T) {
	store := newFakeTransferStore()
	svc := newServiceWithStore(store, fixedClock{t: time.Now().UTC()}, fixedID{v: "T1"})

	_, err := svc.Transfer(context.Background(), TransferRequest{
		AssetIssueID:   7,
		FromSnapshot:   FromSnapshot{EmployeeName: "Asha", EmployeeCode: "E200"},
		EmployeeNameTo: "Ravi",
		EmployeeCodeTo: "E300",
	})
	require.NoError(t, err)

	rows, err := svc.ListHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "E300", rows[0].EmployeeCodeTo)
}
