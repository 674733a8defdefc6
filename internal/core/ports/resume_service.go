package ports

import (
	"context"

	"github.com/resumehub/resume-api/internal/core/domain"
)

type ResumeService interface {
	Create(ctx context.Context, resume *domain.Resume) (*domain.Resume, error)
	List(ctx context.Context) ([]domain.Resume, error)
}
