package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ralhum-backend/internal/domains/sitecontent"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) sitecontent.SiteContentRepository {
	return &postgresRepository{pool: pool}
}

const sectionColumns = `
	id, section_name, slug, section_content, seo_title, seo_description,
	last_updated, created_at`

func scanSection(row pgx.Row) (*sitecontent.CompanyInfo, error) {
	c := &sitecontent.CompanyInfo{}
	err := row.Scan(
		&c.ID, &c.SectionName, &c.Slug, &c.SectionContent,
		&c.SEOTitle, &c.SEODescription, &c.LastUpdated, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) CreateSection(ctx context.Context, entity *sitecontent.CompanyInfo) (*sitecontent.CompanyInfo, error) {
	query := `
		INSERT INTO company_info (` + sectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + sectionColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.SectionName, entity.Slug, entity.SectionContent,
		entity.SEOTitle, entity.SEODescription, entity.LastUpdated, entity.CreatedAt,
	)
	created, err := scanSection(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, sitecontent.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetSectionByID(ctx context.Context, id uuid.UUID) (*sitecontent.CompanyInfo, error) {
	query := `SELECT ` + sectionColumns + ` FROM company_info WHERE id = $1`
	entity, err := scanSection(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetSectionBySlug(ctx context.Context, slug string) (*sitecontent.CompanyInfo, error) {
	query := `SELECT ` + sectionColumns + ` FROM company_info WHERE slug = $1`
	entity, err := scanSection(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section by slug: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetAllSections(ctx context.Context) ([]sitecontent.CompanyInfo, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM company_info`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sections: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT `+sectionColumns+` FROM company_info ORDER BY section_name`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var items []sitecontent.CompanyInfo
	for rows.Next() {
		entity, err := scanSection(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan section: %w", err)
		}
		items = append(items, *entity)
	}
	return items, total, rows.Err()
}

func (r *postgresRepository) UpdateSection(ctx context.Context, entity *sitecontent.CompanyInfo) (*sitecontent.CompanyInfo, error) {
	query := `
		UPDATE company_info SET
			section_name = $2, slug = $3, section_content = $4,
			seo_title = $5, seo_description = $6, last_updated = $7
		WHERE id = $1
		RETURNING ` + sectionColumns

	updated, err := scanSection(r.pool.QueryRow(ctx, query,
		entity.ID, entity.SectionName, entity.Slug, entity.SectionContent,
		entity.SEOTitle, entity.SEODescription, entity.LastUpdated))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrSectionNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, sitecontent.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) DeleteSection(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM company_info WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrSectionNotFound
	}
	return nil
}

func (r *postgresRepository) SectionExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM company_info WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2))`,
		slug, excludeID).Scan(&exists)
	return exists, err
}

// The homepage is one row with the block list stored as JSONB.
func (r *postgresRepository) GetHomepage(ctx context.Context) (*sitecontent.HomepageContent, error) {
	h := &sitecontent.HomepageContent{}
	var blocks []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, blocks, updated_at FROM homepage_content LIMIT 1`,
	).Scan(&h.ID, &blocks, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrHomepageNotFound
		}
		return nil, fmt.Errorf("failed to get homepage content: %w", err)
	}
	if err := json.Unmarshal(blocks, &h.Blocks); err != nil {
		return nil, fmt.Errorf("failed to decode homepage blocks: %w", err)
	}
	return h, nil
}

func (r *postgresRepository) SaveHomepage(ctx context.Context, entity *sitecontent.HomepageContent) (*sitecontent.HomepageContent, error) {
	blocks, err := json.Marshal(entity.Blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode homepage blocks: %w", err)
	}

	existing, err := r.GetHomepage(ctx)
	switch {
	case err == nil:
		entity.ID = existing.ID
		_, err = r.pool.Exec(ctx,
			`UPDATE homepage_content SET blocks = $2, updated_at = $3 WHERE id = $1`,
			entity.ID, blocks, entity.UpdatedAt)
	case errors.Is(err, sitecontent.ErrHomepageNotFound):
		entity.ID = uuid.New()
		_, err = r.pool.Exec(ctx,
			`INSERT INTO homepage_content (id, blocks, updated_at) VALUES ($1, $2, $3)`,
			entity.ID, blocks, entity.UpdatedAt)
	default:
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save homepage content: %w", err)
	}
	return entity, nil
}
