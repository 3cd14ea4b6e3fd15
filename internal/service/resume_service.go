package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/port"
)

// ResumeStore is the persistence surface the resume service needs.
type ResumeStore interface {
	CreateResume(ctx context.Context, r *domain.Resume) error
	GetResumeByID(ctx context.Context, id string) (*domain.Resume, error)
	GetResumeByUserID(ctx context.Context, userID string) (*domain.Resume, error)
	GetResumeByEmail(ctx context.Context, email string) (*domain.Resume, error)
	UpdateResume(ctx context.Context, r *domain.Resume) error
	DeleteResume(ctx context.Context, id string) error
}

// ResumeService handles résumé ingestion and CRUD.
type ResumeService struct {
	store ResumeStore
}

// NewResumeService creates a new résumé service.
func NewResumeService(store ResumeStore) *ResumeService {
	return &ResumeService{store: store}
}

// CreateFromIngest transforms the UI payload into the internal model and
// persists it. Each user may hold at most one résumé.
func (s *ResumeService) CreateFromIngest(ctx context.Context, userID string, payload domain.IngestResume) (*domain.Resume, error) {
	resume, err := transformIngest(userID, payload)
	if err != nil {
		return nil, err
	}
	resume.ID = "resume-" + uuid.NewString()

	if err := s.store.CreateResume(ctx, resume); err != nil {
		return nil, err
	}

	slog.Info("resume created", "resume_id", resume.ID, "user_id", userID)
	return resume, nil
}

// GetByID returns a résumé by ID, enforcing ownership.
func (s *ResumeService) GetByID(ctx context.Context, id, callerID string) (*domain.Resume, error) {
	resume, err := s.store.GetResumeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume.UserID != callerID {
		return nil, port.ErrForbidden
	}
	return resume, nil
}

// GetOwn returns the caller's résumé.
func (s *ResumeService) GetOwn(ctx context.Context, callerID string) (*domain.Resume, error) {
	return s.store.GetResumeByUserID(ctx, callerID)
}

// GetByEmail returns a résumé by the contact email stored on it.
func (s *ResumeService) GetByEmail(ctx context.Context, email string) (*domain.Resume, error) {
	return s.store.GetResumeByEmail(ctx, email)
}

// Update replaces the caller's résumé with a re-transformed payload.
// Entry IDs are regenerated since the payload carries none.
func (s *ResumeService) Update(ctx context.Context, id, callerID string, payload domain.IngestResume) (*domain.Resume, error) {
	existing, err := s.GetByID(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	resume, err := transformIngest(callerID, payload)
	if err != nil {
		return nil, err
	}
	resume.ID = existing.ID
	resume.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateResume(ctx, resume); err != nil {
		return nil, err
	}

	slog.Info("resume updated", "resume_id", resume.ID, "user_id", callerID)
	return resume, nil
}

// Delete removes the caller's résumé.
func (s *ResumeService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.GetByID(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.store.DeleteResume(ctx, id); err != nil {
		return err
	}
	slog.Info("resume deleted", "resume_id", id, "user_id", callerID)
	return nil
}

// FetchItems returns the work-experience and project collections of a
// résumé, enforcing ownership. This is the fetch step of the ranking
// pipeline.
func (s *ResumeService) FetchItems(ctx context.Context, resumeID, callerID string) ([]domain.WorkExperience, []domain.Project, error) {
	resume, err := s.GetByID(ctx, resumeID, callerID)
	if err != nil {
		return nil, nil, err
	}
	return resume.WorkExperience, resume.Projects, nil
}

// transformIngest converts the raw payload into the internal model.
// Entries missing required fields are skipped rather than failing the
// whole payload.
func transformIngest(userID string, payload domain.IngestResume) (*domain.Resume, error) {
	if payload.Personal == nil || strings.TrimSpace(payload.Personal.Name) == "" || strings.TrimSpace(payload.Personal.Email) == "" {
		return nil, port.ErrPersonalRequired
	}

	personal := payload.Personal
	firstName, lastName := splitName(personal.Name)

	resume := &domain.Resume{
		UserID:       userID,
		Email:        strings.TrimSpace(personal.Email),
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        personal.Phone,
		LinkedinURL:  personal.Linkedin,
		PortfolioURL: personal.Github,

		WorkExperience: []domain.WorkExperience{},
		Projects:       []domain.Project{},
		Education:      []domain.Education{},
		Skills:         []domain.Skill{},
	}

	for _, edu := range payload.Education {
		if edu.Institution == "" || edu.Degree == "" {
			continue
		}
		resume.Education = append(resume.Education, domain.Education{
			EducationID:     "edu-" + uuid.NewString(),
			InstitutionName: edu.Institution,
			Degree:          edu.Degree,
			FieldOfStudy:    edu.Details,
			GraduationDate:  edu.End,
			StartDate:       edu.Start,
		})
	}

	for _, exp := range payload.Experience {
		if exp.Company == "" || exp.Role == "" {
			continue
		}
		bullets := splitBullets(exp.Description)
		bullets = append(bullets, splitBullets(exp.Achievements)...)
		resume.WorkExperience = append(resume.WorkExperience, domain.WorkExperience{
			WorkExID:           "work-" + uuid.NewString(),
			JobTitle:           exp.Role,
			CompanyName:        exp.Company,
			StartDate:          exp.Start,
			EndDate:            exp.End,
			DescriptionBullets: bullets,
		})
	}

	for _, proj := range payload.Projects {
		if proj.Title == "" {
			continue
		}
		resume.Projects = append(resume.Projects, domain.Project{
			ProjectID:          "proj-" + uuid.NewString(),
			ProjectName:        proj.Title,
			DescriptionBullets: splitBullets(proj.Description),
		})
	}

	for _, skill := range payload.Skills {
		name := strings.TrimSpace(skill.SkillName)
		if name == "" {
			continue
		}
		resume.Skills = append(resume.Skills, domain.Skill{
			SkillID:   "skill-" + uuid.NewString(),
			SkillName: name,
			Category:  strings.TrimSpace(skill.Category),
		})
	}

	return resume, nil
}

// splitName splits a full name into first and last on the first space.
func splitName(full string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

// splitBullets splits free text into one bullet per non-empty line.
func splitBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
