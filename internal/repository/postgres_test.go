//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostgres_ReadMissing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := NewPostgres(postgresPool, "missing").Read(ctx)
	require.ErrorIs(t, err, NotFoundErr)
}

func TestPostgres_WriteRead(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		_, err := postgresPool.Exec(ctx, `TRUNCATE TABLE finance.ledgers`)
		if err != nil {
			t.Fatal(err)
		}
	}()

	repo := NewPostgres(postgresPool, "default")
	doc := `{"income": [], "expenses": [{"category": "Food", "amount": 200, "date": "2024-01-05"}]}`

	err := repo.Write(ctx, []byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	data, err := repo.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, doc, string(data))
}

func TestPostgres_WriteUpserts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		_, err := postgresPool.Exec(ctx, `TRUNCATE TABLE finance.ledgers`)
		if err != nil {
			t.Fatal(err)
		}
	}()

	repo := NewPostgres(postgresPool, "default")
	for _, doc := range []string{"first", "second"} {
		if err := repo.Write(ctx, []byte(doc)); err != nil {
			t.Fatal(err)
		}
	}

	var rows int
	err := postgresPool.QueryRow(ctx, `SELECT count(*) FROM finance.ledgers`).Scan(&rows)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, rows)

	data, err := repo.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "second", string(data))
}
