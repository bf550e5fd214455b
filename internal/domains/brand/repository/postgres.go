package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ralhum-backend/internal/domains/brand"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) brand.BrandRepository {
	return &postgresRepository{pool: pool}
}

const brandColumns = `
	id, brand_name, slug, brand_description, short_description, brand_logo,
	brand_website, heritage, featured, status, display_order,
	seo_title, seo_description, created_at, updated_at`

func scanBrand(row pgx.Row) (*brand.Brand, error) {
	b := &brand.Brand{}
	err := row.Scan(
		&b.ID, &b.BrandName, &b.Slug, &b.BrandDescription, &b.ShortDescription,
		&b.BrandLogo, &b.BrandWebsite, &b.Heritage, &b.Featured, &b.Status,
		&b.DisplayOrder, &b.SEOTitle, &b.SEODescription, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *brand.Brand) (*brand.Brand, error) {
	query := `
		INSERT INTO brands (` + brandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + brandColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.BrandName, entity.Slug, entity.BrandDescription,
		entity.ShortDescription, entity.BrandLogo, entity.BrandWebsite,
		entity.Heritage, entity.Featured, entity.Status, entity.DisplayOrder,
		entity.SEOTitle, entity.SEODescription, entity.CreatedAt, entity.UpdatedAt,
	)
	created, err := scanBrand(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "idx_brands_name" {
				return nil, brand.ErrDuplicateName
			}
			return nil, brand.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*brand.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`
	entity, err := scanBrand(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, brand.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*brand.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE slug = $1`
	entity, err := scanBrand(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, brand.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to get brand by slug: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter *brand.BrandFilter) ([]brand.Brand, int64, error) {
	where := ""
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		if where == "" {
			where = fmt.Sprintf(" WHERE featured = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND featured = $%d", len(args))
		}
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM brands`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM brands%s ORDER BY display_order, brand_name LIMIT $%d OFFSET $%d`,
		brandColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var items []brand.Brand
	for rows.Next() {
		entity, err := scanBrand(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan brand: %w", err)
		}
		items = append(items, *entity)
	}
	return items, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, entity *brand.Brand) (*brand.Brand, error) {
	query := `
		UPDATE brands SET
			brand_name = $2, slug = $3, brand_description = $4, short_description = $5,
			brand_logo = $6, brand_website = $7, heritage = $8, featured = $9,
			status = $10, display_order = $11, seo_title = $12, seo_description = $13,
			updated_at = $14
		WHERE id = $1
		RETURNING ` + brandColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.BrandName, entity.Slug, entity.BrandDescription,
		entity.ShortDescription, entity.BrandLogo, entity.BrandWebsite,
		entity.Heritage, entity.Featured, entity.Status, entity.DisplayOrder,
		entity.SEOTitle, entity.SEODescription, entity.UpdatedAt,
	)
	updated, err := scanBrand(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, brand.ErrBrandNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, brand.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return brand.ErrBrandNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM brands WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM brands WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2))`,
		slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM brands WHERE LOWER(brand_name) = LOWER($1) AND ($2::uuid IS NULL OR id <> $2))`,
		name, excludeID).Scan(&exists)
	return exists, err
}
