package repository

import (
	"context"
	"errors"
	"fmt"

	"legalease-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists analyses in an analyses table with the
// structured analysis as a JSONB column. The recent list is derived from
// created_at ordering rather than kept separately.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore connects to Postgres and verifies the connection
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: pool}, nil
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

// Put inserts a stored analysis
func (s *PostgresStore) Put(ctx context.Context, stored *models.StoredAnalysis) error {
	query := `
		INSERT INTO analyses (id, file_name, storage_path, analysis, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.Exec(
		ctx, query,
		stored.ID,
		stored.FileName,
		stored.StoragePath,
		stored.Analysis,
		stored.CreatedAt,
	)
	return err
}

// Get retrieves an analysis by id
func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.StoredAnalysis, error) {
	stored := &models.StoredAnalysis{}
	query := `
		SELECT id, file_name, storage_path, analysis, created_at
		FROM analyses
		WHERE id = $1`

	err := s.db.QueryRow(ctx, query, id).Scan(
		&stored.ID,
		&stored.FileName,
		&stored.StoragePath,
		&stored.Analysis,
		&stored.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}

// Recent returns the newest analyses, bounded by RecentLimit
func (s *PostgresStore) Recent(ctx context.Context) ([]*models.StoredAnalysis, error) {
	query := `
		SELECT id, file_name, storage_path, analysis, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.Query(ctx, query, RecentLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StoredAnalysis
	for rows.Next() {
		stored := &models.StoredAnalysis{}
		err := rows.Scan(
			&stored.ID,
			&stored.FileName,
			&stored.StoragePath,
			&stored.Analysis,
			&stored.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, rows.Err()
}

// MostRecent returns the newest stored analysis
func (s *PostgresStore) MostRecent(ctx context.Context) (*models.StoredAnalysis, error) {
	stored := &models.StoredAnalysis{}
	query := `
		SELECT id, file_name, storage_path, analysis, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT 1`

	err := s.db.QueryRow(ctx, query).Scan(
		&stored.ID,
		&stored.FileName,
		&stored.StoragePath,
		&stored.Analysis,
		&stored.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}
