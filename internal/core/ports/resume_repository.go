package ports

import (
	"context"

	"github.com/resumehub/resume-api/internal/core/domain"
)

// ResumeRepository defines persistence operations for resume records.
// Records are insert-only and the only query shape is a full ordered scan.
type ResumeRepository interface {
	Create(ctx context.Context, resume *domain.Resume) (int64, error)
	// List returns every resume in insertion order.
	List(ctx context.Context) ([]domain.Resume, error)
}
