package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ralhum-backend/internal/domains/product"
	"ralhum-backend/pkg/cache"
	"ralhum-backend/pkg/logger"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) product.ProductRepository {
	return &postgresRepository{pool: pool, cache: c}
}

const (
	cacheTTL         = 5 * time.Minute
	cacheSlugKeyFmt  = "product:slug:%s"
	cacheKeyPattern  = "product:*"
)

const productColumns = `
	id, product_name, slug, category_id, brand_id, product_price, compare_at_price,
	sku_code, stock_quantity, product_images, product_description, short_description,
	product_sizes, product_colors, material, weight, dimensions, status, featured,
	tags, seo_title, seo_description, created_at, updated_at`

func scanProduct(row pgx.Row) (*product.Product, error) {
	p := &product.Product{}
	err := row.Scan(
		&p.ID, &p.ProductName, &p.Slug, &p.CategoryID, &p.BrandID,
		&p.ProductPrice, &p.CompareAtPrice, &p.SKUCode, &p.StockQuantity,
		&p.ProductImages, &p.ProductDescription, &p.ShortDescription,
		&p.ProductSizes, &p.ProductColors, &p.Material, &p.Weight, &p.Dimensions,
		&p.Status, &p.Featured, &p.Tags, &p.SEOTitle, &p.SEODescription,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "sku") {
				return product.ErrDuplicateSKU
			}
			return product.ErrDuplicateSlug
		case "23503": // foreign_key_violation
			if strings.Contains(pgErr.ConstraintName, "brand") {
				return product.ErrBrandNotFound
			}
			return product.ErrCategoryNotFound
		}
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, entity *product.Product) (*product.Product, error) {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.ProductName, entity.Slug, entity.CategoryID, entity.BrandID,
		entity.ProductPrice, entity.CompareAtPrice, entity.SKUCode, entity.StockQuantity,
		entity.ProductImages, entity.ProductDescription, entity.ShortDescription,
		entity.ProductSizes, entity.ProductColors, entity.Material, entity.Weight,
		entity.Dimensions, entity.Status, entity.Featured, entity.Tags,
		entity.SEOTitle, entity.SEODescription, entity.CreatedAt, entity.UpdatedAt,
	)
	created, err := scanProduct(row)
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	entity, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return entity, nil
}

// GetBySlug serves the hot storefront path through a short-lived cache.
// A cache outage degrades to a direct query, never an error.
func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	key := fmt.Sprintf(cacheSlugKeyFmt, slug)
	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, key); err == nil && cached != "" {
			p := &product.Product{}
			if err := json.Unmarshal([]byte(cached), p); err == nil {
				return p, nil
			}
		}
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	entity, err := scanProduct(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}

	if r.cache != nil {
		if data, err := json.Marshal(entity); err == nil {
			if err := r.cache.Set(ctx, key, string(data), cacheTTL); err != nil {
				logger.Warn("product cache set failed", map[string]interface{}{"slug": slug})
			}
		}
	}
	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter *product.ProductFilter) ([]product.Product, int64, error) {
	var conds []string
	var args []interface{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.CategoryID != nil {
		add("category_id = $%d", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		add("brand_id = $%d", *filter.BrandID)
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}
	if filter.Featured != nil {
		add("featured = $%d", *filter.Featured)
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		conds = append(conds, fmt.Sprintf(
			"(product_name ILIKE '%%' || $%d || '%%' OR sku_code ILIKE '%%' || $%d || '%%')",
			len(args), len(args),
		))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var items []product.Product
	for rows.Next() {
		entity, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		items = append(items, *entity)
	}
	return items, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, entity *product.Product) (*product.Product, error) {
	query := `
		UPDATE products SET
			product_name = $2, slug = $3, category_id = $4, brand_id = $5,
			product_price = $6, compare_at_price = $7, sku_code = $8,
			stock_quantity = $9, product_images = $10, product_description = $11,
			short_description = $12, product_sizes = $13, product_colors = $14,
			material = $15, weight = $16, dimensions = $17, status = $18,
			featured = $19, tags = $20, seo_title = $21, seo_description = $22,
			updated_at = $23
		WHERE id = $1
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.ProductName, entity.Slug, entity.CategoryID, entity.BrandID,
		entity.ProductPrice, entity.CompareAtPrice, entity.SKUCode, entity.StockQuantity,
		entity.ProductImages, entity.ProductDescription, entity.ShortDescription,
		entity.ProductSizes, entity.ProductColors, entity.Material, entity.Weight,
		entity.Dimensions, entity.Status, entity.Featured, entity.Tags,
		entity.SEOTitle, entity.SEODescription, entity.UpdatedAt,
	)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) (*product.Product, error) {
	query := `
		UPDATE products SET stock_quantity = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := scanProduct(r.pool.QueryRow(ctx, query, id, quantity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2))`,
		slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) ExistsBySKU(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE sku_code = $1 AND ($2::uuid IS NULL OR id <> $2))`,
		sku, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, cacheKeyPattern); err != nil {
		logger.Warn("product cache invalidation failed", map[string]interface{}{"pattern": cacheKeyPattern})
	}
}
