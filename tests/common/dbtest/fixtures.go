//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestProduct inserts an active product and returns its id.
func CreateTestProduct(t *testing.T, db DBLike, name, price string) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, price) VALUES ($1, $2, $3::numeric)",
		productID, name, price)
	require.NoError(t, err)

	return productID
}

func CreatePrescriptionProduct(t *testing.T, db DBLike, name, price string) uuid.UUID {
	t.Helper()

	productID := CreateTestProduct(t, db, name, price)
	_, err := db.Exec(context.Background(),
		"UPDATE products SET requires_prescription = TRUE WHERE id = $1", productID)
	require.NoError(t, err)

	return productID
}

// CreateTestDiscount inserts an automatic discount. With no productIDs it
// covers the whole catalogue.
func CreateTestDiscount(t *testing.T, db DBLike, kind, value string, minQuantity int, productIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	scope := "all"
	if len(productIDs) > 0 {
		scope = "specific"
	}

	discountID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO discounts (id, name, scope, kind, value, min_quantity) VALUES ($1, $2, $3, $4, $5::numeric, $6)",
		discountID, "test "+kind+" "+value, scope, kind, value, minQuantity)
	require.NoError(t, err)

	for _, productID := range productIDs {
		_, err = db.Exec(ctx,
			"INSERT INTO discount_products (discount_id, product_id) VALUES ($1, $2)",
			discountID, productID)
		require.NoError(t, err)
	}

	return discountID
}

// CreateTestCoupon inserts a storewide coupon. A non-empty affiliateRef makes
// it an affiliate coupon.
func CreateTestCoupon(t *testing.T, db DBLike, code, discountKind, value, affiliateRef string) uuid.UUID {
	t.Helper()

	kind := "coupon"
	var ref *string
	if affiliateRef != "" {
		kind = "affiliate"
		ref = &affiliateRef
	}

	couponID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, kind, discount_kind, value, affiliate_ref) VALUES ($1, $2, $3, $4, $5::numeric, $6)",
		couponID, code, kind, discountKind, value, ref)
	require.NoError(t, err)

	return couponID
}

func CountRedemptions(t *testing.T, db DBLike, couponID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT redemption_count FROM coupons WHERE id = $1", couponID).Scan(&count)
	require.NoError(t, err)

	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
