package registry

import (
	"context"
	"database/sql"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistryStore struct {
	inserted  *RegisteredAsset
	insertErr error
	nextID    int64

	bySerial map[string]*RegisteredAsset
	states   map[string]SerialState
}

func newFakeRegistryStore() *fakeRegistryStore {
	return &fakeRegistryStore{
		nextID:   1,
		bySerial: map[string]*RegisteredAsset{},
		states:   map[string]SerialState{},
	}
}

func (f *fakeRegistryStore) Insert(_ context.Context, m *RegisteredAsset) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = m
	id := f.nextID
	f.nextID++
	cp := *m
	cp.ID = id
	f.bySerial[m.SerialNumber] = &cp
	return id, nil
}

func (f *fakeRegistryStore) GetBySerial(_ context.Context, serial string) (*RegisteredAsset, error) {
	return f.bySerial[serial], nil
}

func (f *fakeRegistryStore) List(_ context.Context) ([]RegisteredAsset, error) {
	var out []RegisteredAsset
	for _, m := range f.bySerial {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeRegistryStore) SerialState(_ context.Context, serial string) (SerialState, error) {
	return f.states[serial], nil
}

func TestRegisterAsset_MissingSerial(t *testing.T) {
	svc := newServiceWithStore(newFakeRegistryStore())

	_, err := svc.RegisterAsset(context.Background(), RegisterAssetRequest{SerialNumber: "   "})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeMissingRequiredField, api.Code)
}

func TestRegisterAsset_NormalizesSerial(t *testing.T) {
	store := newFakeRegistryStore()
	svc := newServiceWithStore(store)

	// 前後空白・小文字・全角英数はすべて同じシリアルに畳む
	res, err := svc.RegisterAsset(context.Background(), RegisterAssetRequest{SerialNumber: "  ｓn-001 "})

	require.NoError(t, err)
	assert.Equal(t, "SN-001", res.SerialNumber)
	assert.Equal(t, "SN-001", store.inserted.SerialNumber)
}

func TestRegisterAsset_BlankFieldsBecomeNull(t *testing.T) {
	store := newFakeRegistryStore()
	svc := newServiceWithStore(store)

	_, err := svc.RegisterAsset(context.Background(), RegisterAssetRequest{
		SerialNumber: "SN-010",
		AssetMake:    "Dell",
		Vendor:       "   ",
	})

	require.NoError(t, err)
	assert.True(t, store.inserted.AssetMake.Valid)
	assert.False(t, store.inserted.Vendor.Valid)
	assert.False(t, store.inserted.AssetModel.Valid)
}

func TestRegisterAsset_DuplicateSerial(t *testing.T) {
	store := newFakeRegistryStore()
	store.insertErr = &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	svc := newServiceWithStore(store)

	_, err := svc.RegisterAsset(context.Background(), RegisterAssetRequest{SerialNumber: "SN-001"})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeDuplicateSerial, api.Code)
}

func TestRegisterAsset_BadDate(t *testing.T) {
	svc := newServiceWithStore(newFakeRegistryStore())

	_, err := svc.RegisterAsset(context.Background(), RegisterAssetRequest{
		SerialNumber:     "SN-001",
		RegistrationDate: "01/02/2026",
	})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeMissingRequiredField, api.Code)
}

func TestGetRegisteredAsset_NotFound(t *testing.T) {
	svc := newServiceWithStore(newFakeRegistryStore())

	_, err := svc.GetRegisteredAsset(context.Background(), "SN-404")

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeNotFound, api.Code)
}

func TestValidateForIssuance_Ordering(t *testing.T) {
	reg := &RegisteredAsset{
		ID:           1,
		SerialNumber: "SN-001",
		AssetMake:    sql.NullString{String: "Dell", Valid: true},
	}

	cases := []struct {
		name   string
		state  SerialState
		valid  bool
		reason ValidationReason
		detail bool
	}{
		{"disposed wins over everything", SerialState{Disposed: true, Registered: reg, Issued: true}, false, ReasonDisposed, false},
		{"not registered", SerialState{}, false, ReasonNotRegistered, false},
		{"already issued", SerialState{Registered: reg, Issued: true}, false, ReasonAlreadyIssued, true},
		{"valid", SerialState{Registered: reg}, true, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeRegistryStore()
			store.states["SN-001"] = tc.state
			svc := newServiceWithStore(store)

			res, err := svc.ValidateForIssuance(context.Background(), "sn-001")

			require.NoError(t, err)
			assert.Equal(t, "SN-001", res.SerialNumber)
			assert.Equal(t, tc.valid, res.Valid)
			assert.Equal(t, tc.reason, res.Reason)
			if tc.detail {
				require.NotNil(t, res.Details)
				assert.Equal(t, "SN-001", res.Details.SerialNumber)
			} else {
				assert.Nil(t, res.Details)
			}
		})
	}
}

func TestValidateForIssuance_AfterRegisterAndIssue(t *testing.T) {
	store := newFakeRegistryStore()
	svc := newServiceWithStore(store)

	_, err := svc.RegisterAsset(context.Background(), RegisterAssetRequest{SerialNumber: "SN-001"})
	require.NoError(t, err)

	// 発行後の状態を反映
	store.states["SN-001"] = SerialState{Registered: store.bySerial["SN-001"], Issued: true}

	res, err := svc.ValidateForIssuance(context.Background(), "SN-001")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonAlreadyIssued, res.Reason)
}
