package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asakaida/prodattr/internal/entities"
	"github.com/asakaida/prodattr/internal/repositories"
	"github.com/lib/pq"
)

const productAttrColumns = `id, name, status, created_at, updated_at, deleted`

// PostgresProductAttrRepository implements ProductAttrRepository using PostgreSQL
type PostgresProductAttrRepository struct {
	db *sql.DB
}

// NewPostgresProductAttrRepository creates a new PostgreSQL attribute repository
func NewPostgresProductAttrRepository(db *sql.DB) repositories.ProductAttrRepository {
	return &PostgresProductAttrRepository{db: db}
}

// GetByID retrieves an attribute by ID
func (r *PostgresProductAttrRepository) GetByID(ctx context.Context, id int64) (*entities.ProductAttr, error) {
	query := `SELECT ` + productAttrColumns + `
		FROM product_attr
		WHERE id = $1 AND deleted = FALSE`

	attr, err := scanProductAttr(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute: %w", err)
	}
	return attr, nil
}

// GetByIDs retrieves all attributes whose ID is in ids
func (r *PostgresProductAttrRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.ProductAttr, error) {
	if len(ids) == 0 {
		return []*entities.ProductAttr{}, nil
	}

	query := `SELECT ` + productAttrColumns + `
		FROM product_attr
		WHERE id = ANY($1) AND deleted = FALSE
		ORDER BY id`

	return r.queryList(ctx, query, pq.Array(ids))
}

// GetByName retrieves the attribute with exactly the given name
func (r *PostgresProductAttrRepository) GetByName(ctx context.Context, name string) (*entities.ProductAttr, error) {
	query := `SELECT ` + productAttrColumns + `
		FROM product_attr
		WHERE name = $1 AND deleted = FALSE`

	attr, err := scanProductAttr(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute by name: %w", err)
	}
	return attr, nil
}

// ListByNameLike retrieves attributes whose name contains pattern
func (r *PostgresProductAttrRepository) ListByNameLike(ctx context.Context, pattern string, offset, limit int) ([]*entities.ProductAttr, error) {
	query := `SELECT ` + productAttrColumns + `
		FROM product_attr
		WHERE name LIKE $1 AND deleted = FALSE
		ORDER BY id
		LIMIT $2 OFFSET $3`

	return r.queryList(ctx, query, containsPattern(pattern), limit, offset)
}

// CountByNameLike counts attributes whose name contains pattern
func (r *PostgresProductAttrRepository) CountByNameLike(ctx context.Context, pattern string) (int64, error) {
	query := `SELECT COUNT(*)
		FROM product_attr
		WHERE name LIKE $1 AND deleted = FALSE`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, containsPattern(pattern)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attributes: %w", err)
	}
	return count, nil
}

// ListByStatus retrieves all attributes with the given status
func (r *PostgresProductAttrRepository) ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttr, error) {
	query := `SELECT ` + productAttrColumns + `
		FROM product_attr
		WHERE status = $1 AND deleted = FALSE
		ORDER BY id`

	return r.queryList(ctx, query, int(status))
}

// Create inserts a new attribute and sets its generated ID
func (r *PostgresProductAttrRepository) Create(ctx context.Context, attr *entities.ProductAttr) error {
	if err := attr.Validate(); err != nil {
		return fmt.Errorf("invalid attribute: %w", err)
	}

	if attr.CreatedAt.IsZero() {
		attr.CreatedAt = time.Now()
	}
	attr.UpdatedAt = attr.CreatedAt

	query := `
		INSERT INTO product_attr (name, status, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		attr.Name, int(attr.Status), attr.CreatedAt, attr.UpdatedAt, attr.Deleted,
	).Scan(&attr.ID)
	if isUniqueViolation(err) {
		return repositories.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("failed to create attribute: %w", err)
	}

	return nil
}

// Update applies a partial update
func (r *PostgresProductAttrRepository) Update(ctx context.Context, update *entities.ProductAttrUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	var set setClause
	if update.Name != nil {
		set.add("name", *update.Name)
	}
	if update.Status != nil {
		set.add("status", int(*update.Status))
	}
	query, args := set.build("product_attr", update.ID)

	_, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return repositories.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("failed to update attribute: %w", err)
	}

	return nil
}

func (r *PostgresProductAttrRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]*entities.ProductAttr, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attributes: %w", err)
	}
	defer rows.Close()

	attrs := []*entities.ProductAttr{}
	for rows.Next() {
		attr, err := scanProductAttr(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attribute: %w", err)
		}
		attrs = append(attrs, attr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attributes: %w", err)
	}

	return attrs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProductAttr(row rowScanner) (*entities.ProductAttr, error) {
	var (
		attr   entities.ProductAttr
		status int
	)
	if err := row.Scan(&attr.ID, &attr.Name, &status, &attr.CreatedAt, &attr.UpdatedAt, &attr.Deleted); err != nil {
		return nil, err
	}
	attr.Status = entities.Status(status)
	return &attr, nil
}
