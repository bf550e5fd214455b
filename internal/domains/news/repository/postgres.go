package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ralhum-backend/internal/domains/news"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) news.NewsRepository {
	return &postgresRepository{pool: pool}
}

const newsColumns = `
	id, post_title, slug, post_excerpt, post_content, featured_image, author,
	publish_date, categories, tags, reading_time, featured, status,
	seo_title, seo_description, created_at, updated_at`

func scanNews(row pgx.Row) (*news.News, error) {
	n := &news.News{}
	err := row.Scan(
		&n.ID, &n.PostTitle, &n.Slug, &n.PostExcerpt, &n.PostContent,
		&n.FeaturedImage, &n.Author, &n.PublishDate, &n.Categories, &n.Tags,
		&n.ReadingTime, &n.Featured, &n.Status, &n.SEOTitle, &n.SEODescription,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *news.News) (*news.News, error) {
	query := `
		INSERT INTO news (` + newsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + newsColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.PostTitle, entity.Slug, entity.PostExcerpt, entity.PostContent,
		entity.FeaturedImage, entity.Author, entity.PublishDate, entity.Categories,
		entity.Tags, entity.ReadingTime, entity.Featured, entity.Status,
		entity.SEOTitle, entity.SEODescription, entity.CreatedAt, entity.UpdatedAt,
	)
	created, err := scanNews(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, news.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create news post: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*news.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`
	entity, err := scanNews(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, news.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news post: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*news.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE slug = $1`
	entity, err := scanNews(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, news.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news post by slug: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter *news.NewsFilter) ([]news.News, int64, error) {
	var conds []string
	var args []interface{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("$%d = ANY(categories)", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		conds = append(conds, fmt.Sprintf(
			"(post_title ILIKE '%%' || $%d || '%%' OR post_excerpt ILIKE '%%' || $%d || '%%')",
			len(args), len(args),
		))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM news`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count news posts: %w", err)
	}

	// Published posts sort by publish date, drafts fall back to creation time.
	query := fmt.Sprintf(
		`SELECT %s FROM news%s ORDER BY COALESCE(publish_date, created_at) DESC LIMIT $%d OFFSET $%d`,
		newsColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news posts: %w", err)
	}
	defer rows.Close()

	var items []news.News
	for rows.Next() {
		entity, err := scanNews(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan news post: %w", err)
		}
		items = append(items, *entity)
	}
	return items, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, entity *news.News) (*news.News, error) {
	query := `
		UPDATE news SET
			post_title = $2, slug = $3, post_excerpt = $4, post_content = $5,
			featured_image = $6, author = $7, publish_date = $8, categories = $9,
			tags = $10, reading_time = $11, featured = $12, status = $13,
			seo_title = $14, seo_description = $15, updated_at = $16
		WHERE id = $1
		RETURNING ` + newsColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.PostTitle, entity.Slug, entity.PostExcerpt, entity.PostContent,
		entity.FeaturedImage, entity.Author, entity.PublishDate, entity.Categories,
		entity.Tags, entity.ReadingTime, entity.Featured, entity.Status,
		entity.SEOTitle, entity.SEODescription, entity.UpdatedAt,
	)
	updated, err := scanNews(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, news.ErrNewsNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, news.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to update news post: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete news post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return news.ErrNewsNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news WHERE slug = $1 AND ($2::uuid IS NULL OR id <> $2))`,
		slug, excludeID).Scan(&exists)
	return exists, err
}
