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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

// SeedUser is a user inserted by SeedReferenceData.
type SeedUser struct {
	GUID string
	Name string
}

var (
	Alice = SeedUser{GUID: "01JQ0000000000000000ALICE0", Name: "Alice"}
	Bob   = SeedUser{GUID: "01JQ00000000000000000BOB00", Name: "Bob"}
)

// inserts the user directory needed by tests; users have no write API
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (guid, name) VALUES
		    ($1, $2),
		    ($3, $4)
		ON CONFLICT (guid) DO NOTHING;
	`, Alice.GUID, Alice.Name, Bob.GUID, Bob.Name)
	return err
}

func CreateTestUser(t *testing.T, db DBLike, name string) string {
	t.Helper()

	guid := ulid.Make().String()
	_, err := db.Exec(context.Background(), "INSERT INTO users (guid, name) VALUES ($1, $2)", guid, name)
	require.NoError(t, err)
	return guid
}

// CreateTestExpense inserts an expense directly and returns its guid.
func CreateTestExpense(t *testing.T, db DBLike, userGUID, name string, price int64, paidAt time.Time) string {
	t.Helper()

	guid := ulid.Make().String()
	_, err := db.Exec(context.Background(), `
		INSERT INTO expenses (guid, user_id, name, price, paid_at)
		SELECT $1, u.id, $3, $4, $5 FROM users u WHERE u.guid = $2`,
		guid, userGUID, name, price, paidAt)
	require.NoError(t, err)
	return guid
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
