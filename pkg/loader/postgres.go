package loader

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tburke/sociograph/pkg/graph"
)

// DefaultEdgeQuery fits a friendships table keyed by two person IDs.
const DefaultEdgeQuery = "SELECT source_id, target_id FROM friendships"

// PGSource streams node pairs from a PostgreSQL query. Each row must
// yield two bigint columns.
type PGSource struct {
	pool *pgxpool.Pool
	rows pgx.Rows
	ctx  context.Context
}

// NewPGSource connects to the database and starts the edge query
func NewPGSource(ctx context.Context, databaseURL, query string) (*PGSource, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pooling configuration
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if query == "" {
		query = DefaultEdgeQuery
	}
	rows, err := pool.Query(ctx, query)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("edge query failed: %w", err)
	}

	return &PGSource{pool: pool, rows: rows, ctx: ctx}, nil
}

// Next returns the next row's pair
func (s *PGSource) Next() (graph.NodeID, graph.NodeID, error) {
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return 0, 0, fmt.Errorf("reading edge rows: %w", err)
		}
		return 0, 0, io.EOF
	}

	var u, v int64
	if err := s.rows.Scan(&u, &v); err != nil {
		return 0, 0, fmt.Errorf("scanning edge row: %w", err)
	}
	return graph.NodeID(u), graph.NodeID(v), nil
}

// Close releases the result set and the pool
func (s *PGSource) Close() error {
	s.rows.Close()
	s.pool.Close()
	return nil
}

// Name identifies the source in logs and metrics
func (s *PGSource) Name() string {
	return "postgres"
}
