package postgresql

import (
	"context"
	"testing"

	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

// stubTx only needs to be distinguishable from the pool; none of its
// methods are called.
type stubTx struct {
	pgx.Tx
	id int
}

func TestGetQuerier_UsesContextTransaction(t *testing.T) {
	t.Parallel()

	db := &database.DB{Pool: &pgxpool.Pool{}}
	tx := &stubTx{id: 1}
	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))

	q := GetQuerier(ctx, db)
	assert.Equal(t, database.Querier(tx), q)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	t.Parallel()

	db := &database.DB{Pool: &pgxpool.Pool{}}

	q := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}
