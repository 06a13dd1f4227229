package garbage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGarbageStore は廃棄トランザクションのカスケードを模す。
// 廃棄簿への追記と同時に、貸与と登録の行を消す。
type fakeGarbageStore struct {
	disposed   map[string]GarbageAsset
	issues     map[string]bool
	registered map[string]bool
}

func newFakeGarbageStore() *fakeGarbageStore {
	return &fakeGarbageStore{
		disposed:   map[string]GarbageAsset{},
		issues:     map[string]bool{},
		registered: map[string]bool{},
	}
}

func (f *fakeGarbageStore) ExecDispose(_ context.Context, m *GarbageAsset) error {
	if _, ok := f.disposed[m.SerialNumber]; ok {
		return ErrAlreadyDisposed("asset is already marked as garbage")
	}
	f.disposed[m.SerialNumber] = *m
	delete(f.issues, m.SerialNumber)
	delete(f.registered, m.SerialNumber)
	return nil
}

func (f *fakeGarbageStore) List(_ context.Context) ([]GarbageAsset, error) {
	var out []GarbageAsset
	for _, m := range f.disposed {
		out = append(out, m)
	}
	return out, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixedID struct{ v string }

func (g fixedID) NewULID(time.Time) string { return g.v }

func TestMarkAsGarbage_MissingFields(t *testing.T) {
	svc := newServiceWithStore(newFakeGarbageStore(), fixedClock{}, fixedID{v: "D1"})

	cases := []struct {
		name string
		req  MarkAsGarbageRequest
	}{
		{"no serial", MarkAsGarbageRequest{Date: "2026-03-01"}},
		{"no date", MarkAsGarbageRequest{SerialNumber: "SN-003"}},
		{"bad date", MarkAsGarbageRequest{SerialNumber: "SN-003", Date: "03/01/2026"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.MarkAsGarbage(context.Background(), tc.req)

			var api *APIError
			require.ErrorAs(t, err, &api)
			assert.Equal(t, CodeMissingRequiredField, api.Code)
		})
	}
}

func TestMarkAsGarbage_CascadesAndTerminates(t *testing.T) {
	store := newFakeGarbageStore()
	store.issues["SN-003"] = true
	store.registered["SN-003"] = true
	svc := newServiceWithStore(store, fixedClock{t: time.Now().UTC()}, fixedID{v: "01DISPOSALULID"})

	res, err := svc.MarkAsGarbage(context.Background(), MarkAsGarbageRequest{
		SerialNumber:      " sn-003 ",
		Date:              "2026-03-01",
		AssetType:         "Laptop",
		ReasonForDisposal: "beyond repair",
	})
	require.NoError(t, err)

	assert.Equal(t, "SN-003", res.SerialNumber)
	assert.Equal(t, "01DISPOSALULID", res.DisposalULID)
	require.NotNil(t, res.ReasonForDisposal)
	assert.Equal(t, "beyond repair", *res.ReasonForDisposal)

	// 貸与も登録も同時に消える
	assert.False(t, store.issues["SN-003"])
	assert.False(t, store.registered["SN-003"])
	_, disposed := store.disposed["SN-003"]
	assert.True(t, disposed)
}

func TestMarkAsGarbage_RejectsDoubleDisposal(t *testing.T) {
	store := newFakeGarbageStore()
	svc := newServiceWithStore(store, fixedClock{t: time.Now().UTC()}, fixedID{v: "D1"})

	_, err := svc.MarkAsGarbage(context.Background(), MarkAsGarbageRequest{
		SerialNumber: "SN-003", Date: "2026-03-01",
	})
	require.NoError(t, err)

	_, err = svc.MarkAsGarbage(context.Background(), MarkAsGarbageRequest{
		SerialNumber: "SN-003", Date: "2026-03-02",
	})

	var api *APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeAlreadyDisposed, api.Code)
}

func TestMarkAsGarbage_BlankOptionalFieldsBecomeNull(t *testing.T) {
	store := newFakeGarbageStore()
	svc := newServiceWithStore(store, fixedClock{t: time.Now().UTC()}, fixedID{v: "D1"})

	res, err := svc.MarkAsGarbage(context.Background(), MarkAsGarbageRequest{
		SerialNumber: "SN-004", Date: "2026-03-01", AssignedDepartment: "  ",
	})
	require.NoError(t, err)
	assert.Nil(t, res.AssignedDepartment)
	assert.Nil(t, res.AssetType)
}
