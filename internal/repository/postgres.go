package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"
)

// Postgres keeps the document in one row of finance.ledgers, see migrations/.
type Postgres struct {
	conn *pgxpool.Pool
	name string
}

func NewPostgres(conn *pgxpool.Pool, name string) *Postgres {
	return &Postgres{
		conn: conn,
		name: name,
	}
}

// ConnectPostgres opens a pool for endpoint and pings it.
func ConnectPostgres(ctx context.Context, endpoint string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("repository.Postgres, connect error: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repository.Postgres, ping error: %w", err)
	}
	logrus.Infof("connected to postgres")
	return pool, nil
}

func (p *Postgres) Read(ctx context.Context) ([]byte, error) {
	query := `SELECT document FROM finance.ledgers WHERE name=$1`
	var document string
	err := p.conn.QueryRow(ctx, query, p.name).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, NotFoundErr
	}
	if err != nil {
		return nil, fmt.Errorf("repository.Postgres, read ledger error: %w", err)
	}
	return []byte(document), nil
}

func (p *Postgres) Write(ctx context.Context, data []byte) error {
	query := `INSERT INTO finance.ledgers (name, document, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`
	_, err := p.conn.Exec(ctx, query, p.name, string(data))
	if err != nil {
		return fmt.Errorf("repository.Postgres, write ledger error: %w", err)
	}
	return nil
}

var _ Document = (*Postgres)(nil)
