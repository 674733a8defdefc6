package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/resumehub/resume-api/internal/core/domain"
	"github.com/resumehub/resume-api/internal/core/ports"
)

var _ ports.ResumeRepository = (*ResumeRepository)(nil)

// ResumeRepository persists resume records in the resumes table.
type ResumeRepository struct {
	db *sql.DB
}

func NewResumeRepository(db *sql.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func (r *ResumeRepository) Create(ctx context.Context, resume *domain.Resume) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO resumes (name, email, skills, experience) VALUES (?, ?, ?, ?)`,
		resume.Name, resume.Email, resume.Skills, resume.Experience,
	)
	if err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert resume id: %w", err)
	}
	return id, nil
}

// List scans the whole table ordered by id, which is insertion order.
func (r *ResumeRepository) List(ctx context.Context) ([]domain.Resume, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, skills, experience FROM resumes ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	resumes := make([]domain.Resume, 0)
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(&resume.ID, &resume.Name, &resume.Email, &resume.Skills, &resume.Experience); err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return resumes, nil
}
