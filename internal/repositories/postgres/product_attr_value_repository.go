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

const productAttrValueColumns = `id, attr_id, name, status, created_at, updated_at, deleted`

// PostgresProductAttrValueRepository implements ProductAttrValueRepository using PostgreSQL
type PostgresProductAttrValueRepository struct {
	db *sql.DB
}

// NewPostgresProductAttrValueRepository creates a new PostgreSQL attribute value repository
func NewPostgresProductAttrValueRepository(db *sql.DB) repositories.ProductAttrValueRepository {
	return &PostgresProductAttrValueRepository{db: db}
}

// GetByID retrieves a value by ID
func (r *PostgresProductAttrValueRepository) GetByID(ctx context.Context, id int64) (*entities.ProductAttrValue, error) {
	query := `SELECT ` + productAttrValueColumns + `
		FROM product_attr_value
		WHERE id = $1 AND deleted = FALSE`

	value, err := scanProductAttrValue(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute value: %w", err)
	}
	return value, nil
}

// GetByIDs retrieves all values whose ID is in ids
func (r *PostgresProductAttrValueRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entities.ProductAttrValue, error) {
	if len(ids) == 0 {
		return []*entities.ProductAttrValue{}, nil
	}

	query := `SELECT ` + productAttrValueColumns + `
		FROM product_attr_value
		WHERE id = ANY($1) AND deleted = FALSE
		ORDER BY id`

	return r.queryList(ctx, query, pq.Array(ids))
}

// GetByAttrIDAndName retrieves the value named name under the given attribute
func (r *PostgresProductAttrValueRepository) GetByAttrIDAndName(ctx context.Context, attrID int64, name string) (*entities.ProductAttrValue, error) {
	query := `SELECT ` + productAttrValueColumns + `
		FROM product_attr_value
		WHERE attr_id = $1 AND name = $2 AND deleted = FALSE`

	value, err := scanProductAttrValue(r.db.QueryRowContext(ctx, query, attrID, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attribute value by name: %w", err)
	}
	return value, nil
}

// ListByAttrIDs retrieves all values owned by any of the given attributes
func (r *PostgresProductAttrValueRepository) ListByAttrIDs(ctx context.Context, attrIDs []int64) ([]*entities.ProductAttrValue, error) {
	if len(attrIDs) == 0 {
		return []*entities.ProductAttrValue{}, nil
	}

	query := `SELECT ` + productAttrValueColumns + `
		FROM product_attr_value
		WHERE attr_id = ANY($1) AND deleted = FALSE
		ORDER BY id`

	return r.queryList(ctx, query, pq.Array(attrIDs))
}

// ListByStatus retrieves all values with the given status
func (r *PostgresProductAttrValueRepository) ListByStatus(ctx context.Context, status entities.Status) ([]*entities.ProductAttrValue, error) {
	query := `SELECT ` + productAttrValueColumns + `
		FROM product_attr_value
		WHERE status = $1 AND deleted = FALSE
		ORDER BY id`

	return r.queryList(ctx, query, int(status))
}

// Create inserts a new value and sets its generated ID
func (r *PostgresProductAttrValueRepository) Create(ctx context.Context, value *entities.ProductAttrValue) error {
	if err := value.Validate(); err != nil {
		return fmt.Errorf("invalid attribute value: %w", err)
	}

	if value.CreatedAt.IsZero() {
		value.CreatedAt = time.Now()
	}
	value.UpdatedAt = value.CreatedAt

	query := `
		INSERT INTO product_attr_value (attr_id, name, status, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		value.AttrID, value.Name, int(value.Status), value.CreatedAt, value.UpdatedAt, value.Deleted,
	).Scan(&value.ID)
	if isUniqueViolation(err) {
		return repositories.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("failed to create attribute value: %w", err)
	}

	return nil
}

// Update applies a partial update
func (r *PostgresProductAttrValueRepository) Update(ctx context.Context, update *entities.ProductAttrValueUpdate) error {
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
	query, args := set.build("product_attr_value", update.ID)

	_, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return repositories.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("failed to update attribute value: %w", err)
	}

	return nil
}

func (r *PostgresProductAttrValueRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]*entities.ProductAttrValue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attribute values: %w", err)
	}
	defer rows.Close()

	values := []*entities.ProductAttrValue{}
	for rows.Next() {
		value, err := scanProductAttrValue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attribute value: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attribute values: %w", err)
	}

	return values, nil
}

func scanProductAttrValue(row rowScanner) (*entities.ProductAttrValue, error) {
	var (
		value  entities.ProductAttrValue
		status int
	)
	if err := row.Scan(&value.ID, &value.AttrID, &value.Name, &status, &value.CreatedAt, &value.UpdatedAt, &value.Deleted); err != nil {
		return nil, err
	}
	value.Status = entities.Status(status)
	return &value, nil
}
