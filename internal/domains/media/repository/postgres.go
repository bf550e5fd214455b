package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ralhum-backend/internal/domains/media"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) media.MediaRepository {
	return &postgresRepository{pool: pool}
}

const mediaColumns = `
	id, filename, url, alt, caption, category, variants, mime_type, filesize,
	created_at, updated_at`

func scanMedia(row pgx.Row) (*media.Media, error) {
	m := &media.Media{}
	err := row.Scan(
		&m.ID, &m.Filename, &m.URL, &m.Alt, &m.Caption, &m.Category,
		&m.Variants, &m.MimeType, &m.Filesize, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *media.Media) (*media.Media, error) {
	query := `
		INSERT INTO media (` + mediaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + mediaColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID, entity.Filename, entity.URL, entity.Alt, entity.Caption,
		entity.Category, entity.Variants, entity.MimeType, entity.Filesize,
		entity.CreatedAt, entity.UpdatedAt,
	)
	created, err := scanMedia(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create media: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*media.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE id = $1`
	entity, err := scanMedia(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, media.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter *media.MediaFilter) ([]media.Media, int64, error) {
	var conds []string
	var args []interface{}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		conds = append(conds, fmt.Sprintf(
			"(filename ILIKE '%%' || $%d || '%%' OR alt ILIKE '%%' || $%d || '%%')",
			len(args), len(args),
		))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM media`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count media: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM media%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		mediaColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list media: %w", err)
	}
	defer rows.Close()

	var items []media.Media
	for rows.Next() {
		entity, err := scanMedia(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan media: %w", err)
		}
		items = append(items, *entity)
	}
	return items, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, entity *media.Media) (*media.Media, error) {
	query := `
		UPDATE media SET
			alt = $2, caption = $3, category = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + mediaColumns

	updated, err := scanMedia(r.pool.QueryRow(ctx, query,
		entity.ID, entity.Alt, entity.Caption, entity.Category, entity.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, media.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to update media: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return media.ErrMediaNotFound
	}
	return nil
}
