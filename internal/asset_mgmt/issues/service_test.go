package issues

import (
	"context"
	"strings"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssueStore struct {
	byID      map[int64]*Issue
	nextID    int64
	insertErr error
}

func newFakeIssueStore() *fakeIssueStore {
	return &fakeIssueStore{byID: map[int64]*Issue{}, nextID: 1}
}

func (f *fakeIssueStore) Insert(_ context.Context, m *Issue) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	for _, ex := range f.byID {
		if ex.SerialNumber == m.SerialNumber {
			return 0, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		}
	}
	id := f.nextID
	f.nextID++
	cp := *m
	cp.ID = id
	f.byID[id] = &cp
	return id, nil
}

func (f *fakeIssueStore) GetByID(_ context.Context, id int64) (*Issue, error) {
	return f.byID[id], nil
}

func (f *fakeIssueStore) Update(_ context.Context, id int64, in UpdateIssueRequest) (int64, error) {
	m, ok := f.byID[id]
	if !ok {
		return 0, nil
	}
	aff := int64(0)
	if in.EmployeeName != nil && *in.EmployeeName != m.EmployeeName {
		m.EmployeeName = *in.EmployeeName
		aff = 1
	}
	if in.EmployeeCode != nil && *in.EmployeeCode != m.EmployeeCode {
		m.EmployeeCode = *in.EmployeeCode
		aff = 1
	}
	if in.Department != nil {
		m.Department.Valid, m.Department.String = true, *in.Department
		aff = 1
	}
	return aff, nil
}

func (f *fakeIssueStore) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

func (f *fakeIssueStore) List(_ context.Context) ([]Issue, error) {
	var out []Issue
	for _, m := range f.byID {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeIssueStore) SearchByEmployee(_ context.Context, term string) (*Issue, error) {
	for _, m := range f.byID {
		if strings.Contains(m.EmployeeName, term) || strings.Contains(m.EmployeeCode, term) {
			return m, nil
		}
	}
	return nil, nil
}

func strp(s string) *string { return &s }

func TestCreateIssue_MissingFields(t *testing.T) {
	svc := newServiceWithStore(newFakeIssueStore())

	cases := []struct {
		name string
		req  CreateIssueRequest
	}{
		{"no employee name", CreateIssueRequest{EmployeeCode: "E100", SerialNumber: "SN-001"}},
		{"no employee code", CreateIssueRequest{EmployeeName: "Asha", SerialNumber: "SN-001"}},
		{"no serial", CreateIssueRequest{EmployeeName: "Asha", EmployeeCode: "E100"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateIssue(context.Background(), tc.req)

			var api *APIError
			require.ErrorAs(t, err, &api)
			assert.Equal(t, CodeMissingRequiredField, api.Code)
		})
	}
}

func TestCreateIssue_NormalizesSerialAndStoresChecklist(t *testing.T) {
	store := newFakeIssueStore()
	svc := newServiceWithStore(store)

	res, err := svc.CreateIssue(context.Background(), CreateIssueRequest{
		EmployeeName: "Asha",
		EmployeeCode: "E100",
		SerialNumber: " sn-001 ",
		AssetType:    strp("Laptop"),
		ChecklistFields: ChecklistFields{
			OperatingSystem: strp("Windows 11"),
			Antivirus:       strp("Yes"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "SN-001", res.SerialNumber)
	require.NotNil(t, res.OperatingSystem)
	assert.Equal(t, "Windows 11", *res.OperatingSystem)
	assert.Nil(t, res.Chrome)
}

func TestCreateIssue_DuplicateSerial(t *testing.T) {
	store := newFakeIssueStore()
	svc := newServiceWithStore(store)

	_, err := svc.CreateIssue(context.Background(), CreateIssueRequest{
		EmployeeName: "Asha", EmployeeCode: "E100", SerialNumber: "SN-001",
	})
	require.NoError(t, err)

	// 同じシリアルの二重発行はUNIQUE制約が止める
	_, err = svc.CreateIssue(context.Background(), CreateIssueRequest{
		EmployeeName: "Ravi", EmployeeCode: "E200", SerialNumber: "SN-001",
	})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeDuplicateSerial, api.Code)
}

func TestUpdateIssue_NotFound(t *testing.T) {
	svc := newServiceWithStore(newFakeIssueStore())

	_, err := svc.UpdateIssue(context.Background(), 42, UpdateIssueRequest{
		HolderFields: HolderFields{Department: strp("IT")},
	})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeNotFound, api.Code)
}

func TestUpdateIssue_BlankRequiredField(t *testing.T) {
	svc := newServiceWithStore(newFakeIssueStore())

	_, err := svc.UpdateIssue(context.Background(), 1, UpdateIssueRequest{EmployeeName: strp("  ")})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeMissingRequiredField, api.Code)
}

func TestUpdateIssue_Partial(t *testing.T) {
	store := newFakeIssueStore()
	svc := newServiceWithStore(store)

	created, err := svc.CreateIssue(context.Background(), CreateIssueRequest{
		EmployeeName: "Asha", EmployeeCode: "E100", SerialNumber: "SN-001",
	})
	require.NoError(t, err)

	res, err := svc.UpdateIssue(context.Background(), created.ID, UpdateIssueRequest{
		HolderFields: HolderFields{Department: strp("Finance")},
	})

	require.NoError(t, err)
	require.NotNil(t, res.Department)
	assert.Equal(t, "Finance", *res.Department)
	// 触っていない項目は残る
	assert.Equal(t, "Asha", res.EmployeeName)
}

func TestDeleteIssue(t *testing.T) {
	store := newFakeIssueStore()
	svc := newServiceWithStore(store)

	created, err := svc.CreateIssue(context.Background(), CreateIssueRequest{
		EmployeeName: "Asha", EmployeeCode: "E100", SerialNumber: "SN-001",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteIssue(context.Background(), created.ID))

	err = svc.DeleteIssue(context.Background(), created.ID)
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeNotFound, api.Code)
}

func TestFindByEmployee(t *testing.T) {
	store := newFakeIssueStore()
	svc := newServiceWithStore(store)

	_, err := svc.CreateIssue(context.Background(), CreateIssueRequest{
		EmployeeName: "Asha", EmployeeCode: "E100", SerialNumber: "SN-001",
	})
	require.NoError(t, err)

	res, err := svc.FindByEmployee(context.Background(), "E100")
	require.NoError(t, err)
	assert.Equal(t, "SN-001", res.SerialNumber)

	_, err = svc.FindByEmployee(context.Background(), "nobody")
	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeNotFound, api.Code)

	_, err = svc.FindByEmployee(context.Background(), "  ")
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeMissingRequiredField, api.Code)
}
