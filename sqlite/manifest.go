package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/mdxport"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mdxport.ManifestService = (*ManifestService)(nil)

// ManifestService implements mdxport.ManifestService using SQLite.
type ManifestService struct {
	db *DB
}

// NewManifestService creates a new ManifestService.
func NewManifestService(db *DB) *ManifestService {
	return &ManifestService{db: db}
}

// CreateConversion records the outcome of one document conversion.
func (s *ManifestService) CreateConversion(ctx context.Context, c *mdxport.Conversion) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.ConvertedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, run_id, source_file, output_path, title, status, detail, images, image_failures, content_hash, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.RunID, c.SourceFile, c.OutputPath, c.Title, c.Status, c.Detail,
		c.Images, c.ImageFailures, c.ContentHash, c.ConvertedAt.Format(time.RFC3339))

	return err
}

// FindConversions retrieves conversions matching the filter, most recent
// first.
func (s *ManifestService) FindConversions(ctx context.Context, filter mdxport.ConversionFilter) ([]*mdxport.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, source_file, output_path, title, status, detail, images, image_failures, content_hash, converted_at FROM conversions WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY converted_at DESC, source_file ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []*mdxport.Conversion
	for rows.Next() {
		var c mdxport.Conversion
		var convertedAt string

		if err := rows.Scan(&c.ID, &c.RunID, &c.SourceFile, &c.OutputPath, &c.Title,
			&c.Status, &c.Detail, &c.Images, &c.ImageFailures, &c.ContentHash, &convertedAt); err != nil {
			return nil, err
		}

		c.ConvertedAt, err = parseRFC3339(convertedAt, "converted_at")
		if err != nil {
			return nil, err
		}

		conversions = append(conversions, &c)
	}

	return conversions, rows.Err()
}

// LatestRunID returns the ID of the most recent run.
func (s *ManifestService) LatestRunID(ctx context.Context) (string, error) {
	var runID string
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id FROM conversions ORDER BY converted_at DESC, rowid DESC LIMIT 1
	`).Scan(&runID)

	if err == sql.ErrNoRows {
		return "", mdxport.Errorf(mdxport.ENOTFOUND, "no conversions recorded")
	}
	if err != nil {
		return "", err
	}

	return runID, nil
}
