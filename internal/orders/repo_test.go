package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	"github.com/magieskin/storefront-backend/pkg/types"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer TEXT NOT NULL,
  items TEXT NOT NULL,
  total REAL NOT NULL DEFAULT 0,
  date TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)

	return db
}

func hostedOrder(id, date string) *models.Order {
	return &models.Order{
		ID: id,
		Customer: types.Customer{
			Emri:    "Arta",
			Mbiemri: "Krasniqi",
			Email:   "arta@example.com",
			Adresa:  "Rruga 1",
			Shteti:  "Kosovo",
			Qyteti:  "Prishtina",
		},
		Items: []types.OrderItem{
			{Product: types.OrderProduct{ID: "p1", Name: "Magie Renewal Serum", Price: 125}, Quantity: 2},
		},
		Total:  250,
		Date:   date,
		Status: enums.OrderStatusPending,
	}
}

func TestHostedStoreSaveAndList(t *testing.T) {
	db := setupOrdersTestDB(t)
	store := NewHostedStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, hostedOrder("ord_1", "2026-08-29T10:00:00Z")))
	require.NoError(t, store.Save(ctx, hostedOrder("ord_2", "2026-08-30T10:00:00Z")))

	rows, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// newest first
	assert.Equal(t, "ord_2", rows[0].ID)
	assert.Equal(t, "ord_1", rows[1].ID)

	assert.Equal(t, "Arta", rows[0].Customer.Emri)
	require.Len(t, rows[0].Items, 1)
	assert.Equal(t, 2, rows[0].Items[0].Quantity)
	assert.Equal(t, float64(250), rows[0].Total)
	assert.Equal(t, enums.OrderStatusPending, rows[0].Status)
}

func TestHostedStoreRejectsDuplicateID(t *testing.T) {
	db := setupOrdersTestDB(t)
	store := NewHostedStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, hostedOrder("ord_1", "2026-08-29T10:00:00Z")))
	assert.Error(t, store.Save(ctx, hostedOrder("ord_1", "2026-08-30T10:00:00Z")))
}

func TestHostedStoreUpdateStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	store := NewHostedStore(db)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, hostedOrder("ord_1", "2026-08-29T10:00:00Z")))
	require.NoError(t, store.UpdateStatus(ctx, "ord_1", enums.OrderStatusCompleted))

	rows, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, enums.OrderStatusCompleted, rows[0].Status)

	// unknown id is a no-op, not an error
	require.NoError(t, store.UpdateStatus(ctx, "ord_missing", enums.OrderStatusCompleted))
}
