package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/resumehub/resume-api/internal/api/metrics"
	"github.com/resumehub/resume-api/internal/core/domain"
	"github.com/resumehub/resume-api/internal/core/ports"
)

// ResumeService persists and lists resume records. Values pass through
// verbatim: email format, skill taxonomy and experience range are the
// caller's business.
type ResumeService struct {
	repo ports.ResumeRepository
	log  zerolog.Logger
}

func NewResumeService(repo ports.ResumeRepository, log zerolog.Logger) *ResumeService {
	return &ResumeService{repo: repo, log: log}
}

func (s *ResumeService) Create(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	id, err := s.repo.Create(ctx, resume)
	if err != nil {
		s.log.Error().Err(err).Str("name", resume.Name).Msg("failed to create resume")
		return nil, err
	}

	resume.ID = id
	metrics.ResumesCreatedTotal.Inc()
	s.log.Info().Int64("resume_id", id).Str("name", resume.Name).Msg("resume created")
	return resume, nil
}

// List returns every stored resume in insertion order.
func (s *ResumeService) List(ctx context.Context) ([]domain.Resume, error) {
	resumes, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list resumes")
		return nil, err
	}
	return resumes, nil
}
