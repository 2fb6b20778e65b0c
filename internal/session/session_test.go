package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

func TestMemoryStoreStaffRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	rec := &StaffSession{
		IsAuthenticated: true,
		User: &StaffUser{
			ID:        "user-1",
			Name:      "Ada",
			Email:     "ada@example.com",
			Role:      domain.UserRoleOwner,
			CreatedAt: time.Now().UTC(),
		},
		Company: &StaffCompany{
			ID:        "company-1",
			Name:      "Acme",
			Plan:      domain.CompanyPlanPro,
			KioskCode: "ACME-1234",
			OwnerID:   "user-1",
		},
	}
	require.NoError(t, store.WriteStaff(ctx, "sid", rec))

	got, err := store.ReadStaff(ctx, "sid")
	require.NoError(t, err)
	require.True(t, got.IsAuthenticated)
	require.Equal(t, "user-1", got.User.ID)
	require.Equal(t, "ACME-1234", got.Company.KioskCode)

	require.NoError(t, store.DeleteStaff(ctx, "sid"))
	got, err = store.ReadStaff(ctx, "sid")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStoreKioskRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	rec := &KioskSession{
		CurrentKiosk: &KioskIdentity{
			CompanyID:    "company-1",
			CompanyName:  "Acme",
			DeviceLabel:  "front-desk",
			RegisteredAt: time.Now().UTC(),
		},
	}
	require.NoError(t, store.WriteKiosk(ctx, "kid", rec))

	got, err := store.ReadKiosk(ctx, "kid")
	require.NoError(t, err)
	require.NotNil(t, got.CurrentKiosk)
	require.Equal(t, "front-desk", got.CurrentKiosk.DeviceLabel)
}

func TestReadAbsentReturnsNilNil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	staff, err := store.ReadStaff(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, staff)

	kiosk, err := store.ReadKiosk(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, kiosk)
}

func TestMalformedStaffPayloads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := map[string]string{
		"not json":                     `{{{`,
		"wrong shape":                  `[1,2,3]`,
		"authenticated without user":   `{"is_authenticated":true}`,
		"user with empty id":           `{"is_authenticated":true,"user":{"id":""}}`,
		"identity without auth":        `{"is_authenticated":false,"user":{"id":"user-1"}}`,
		"company on anonymous record":  `{"is_authenticated":false,"company":{"id":"c1"}}`,
		"company missing id":           `{"is_authenticated":true,"user":{"id":"u1"},"company":{"name":"Acme"}}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore()
			store.SeedRaw(KindStaff, "sid", []byte(payload))

			rec, err := store.ReadStaff(ctx, "sid")
			require.ErrorIs(t, err, ErrSessionUnreadable)
			require.Nil(t, rec)
		})
	}
}

func TestMalformedKioskPayloads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := map[string]string{
		"not json":                `not-json`,
		"identity without company": `{"current_kiosk":{"device_label":"front-desk"}}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore()
			store.SeedRaw(KindKiosk, "kid", []byte(payload))

			rec, err := store.ReadKiosk(ctx, "kid")
			require.ErrorIs(t, err, ErrSessionUnreadable)
			require.Nil(t, rec)
		})
	}
}

func TestEmptyKioskRecordIsReadable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	store.SeedRaw(KindKiosk, "kid", []byte(`{}`))

	rec, err := store.ReadKiosk(ctx, "kid")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Nil(t, rec.CurrentKiosk)
}

func TestSessionKindsAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.WriteStaff(ctx, "shared-id", &StaffSession{
		IsAuthenticated: true,
		User:            &StaffUser{ID: "user-1"},
	}))

	kiosk, err := store.ReadKiosk(ctx, "shared-id")
	require.NoError(t, err)
	require.Nil(t, kiosk)

	require.NoError(t, store.DeleteKiosk(ctx, "shared-id"))
	staff, err := store.ReadStaff(ctx, "shared-id")
	require.NoError(t, err)
	require.NotNil(t, staff)
}
