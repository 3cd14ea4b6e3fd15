package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/port"
)

const resumeColumns = `id, user_id, email, first_name, last_name, phone, linkedin_url, portfolio_url,
	work_experience, projects, education, skills, created_at, updated_at`

// CreateResume inserts a résumé document. Each user may hold at most one;
// a second insert for the same user fails with port.ErrResumeExists.
func (s *PostgresStore) CreateResume(ctx context.Context, r *domain.Resume) error {
	sections, err := marshalSections(r)
	if err != nil {
		return err
	}

	query := `INSERT INTO resumes (id, user_id, email, first_name, last_name, phone, linkedin_url, portfolio_url,
	          work_experience, projects, education, skills)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = s.db.ExecContext(ctx, query,
		r.ID, r.UserID, r.Email, r.FirstName, r.LastName, r.Phone, r.LinkedinURL, r.PortfolioURL,
		sections.workExperience, sections.projects, sections.education, sections.skills,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port.ErrResumeExists
		}
		return fmt.Errorf("create resume: %w", err)
	}
	return nil
}

// GetResumeByID retrieves a résumé by its ID.
func (s *PostgresStore) GetResumeByID(ctx context.Context, id string) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return s.scanResume(s.db.QueryRowContext(ctx, query, id))
}

// GetResumeByUserID retrieves the résumé owned by a user.
func (s *PostgresStore) GetResumeByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1`
	return s.scanResume(s.db.QueryRowContext(ctx, query, userID))
}

// GetResumeByEmail retrieves a résumé by the contact email stored on it.
func (s *PostgresStore) GetResumeByEmail(ctx context.Context, email string) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE email = $1`
	return s.scanResume(s.db.QueryRowContext(ctx, query, email))
}

// UpdateResume replaces the stored document for r.ID.
func (s *PostgresStore) UpdateResume(ctx context.Context, r *domain.Resume) error {
	sections, err := marshalSections(r)
	if err != nil {
		return err
	}

	query := `UPDATE resumes SET email = $2, first_name = $3, last_name = $4, phone = $5,
	          linkedin_url = $6, portfolio_url = $7,
	          work_experience = $8, projects = $9, education = $10, skills = $11,
	          updated_at = NOW()
	          WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query,
		r.ID, r.Email, r.FirstName, r.LastName, r.Phone, r.LinkedinURL, r.PortfolioURL,
		sections.workExperience, sections.projects, sections.education, sections.skills,
	)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return port.ErrResumeNotFound
	}
	return nil
}

// DeleteResume removes a résumé by ID.
func (s *PostgresStore) DeleteResume(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return port.ErrResumeNotFound
	}
	return nil
}

// --- helpers ---

type sectionJSON struct {
	workExperience []byte
	projects       []byte
	education      []byte
	skills         []byte
}

func marshalSections(r *domain.Resume) (*sectionJSON, error) {
	var out sectionJSON
	var err error
	if out.workExperience, err = json.Marshal(r.WorkExperience); err != nil {
		return nil, fmt.Errorf("marshal work experience: %w", err)
	}
	if out.projects, err = json.Marshal(r.Projects); err != nil {
		return nil, fmt.Errorf("marshal projects: %w", err)
	}
	if out.education, err = json.Marshal(r.Education); err != nil {
		return nil, fmt.Errorf("marshal education: %w", err)
	}
	if out.skills, err = json.Marshal(r.Skills); err != nil {
		return nil, fmt.Errorf("marshal skills: %w", err)
	}
	return &out, nil
}

func (s *PostgresStore) scanResume(row *sql.Row) (*domain.Resume, error) {
	var r domain.Resume
	var lastName, phone, linkedin, portfolio sql.NullString
	var workExperience, projects, education, skills []byte

	err := row.Scan(
		&r.ID, &r.UserID, &r.Email, &r.FirstName, &lastName, &phone, &linkedin, &portfolio,
		&workExperience, &projects, &education, &skills, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrResumeNotFound
		}
		return nil, fmt.Errorf("scan resume: %w", err)
	}

	r.LastName = lastName.String
	r.Phone = phone.String
	r.LinkedinURL = linkedin.String
	r.PortfolioURL = portfolio.String

	if err := json.Unmarshal(workExperience, &r.WorkExperience); err != nil {
		return nil, fmt.Errorf("unmarshal work experience: %w", err)
	}
	if err := json.Unmarshal(projects, &r.Projects); err != nil {
		return nil, fmt.Errorf("unmarshal projects: %w", err)
	}
	if err := json.Unmarshal(education, &r.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(skills, &r.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	return &r, nil
}
