package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/port"
)

type fakeResumeStore struct {
	resumes map[string]*domain.Resume
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{resumes: map[string]*domain.Resume{}}
}

func (f *fakeResumeStore) CreateResume(_ context.Context, r *domain.Resume) error {
	for _, existing := range f.resumes {
		if existing.UserID == r.UserID {
			return port.ErrResumeExists
		}
	}
	cp := *r
	f.resumes[r.ID] = &cp
	return nil
}

func (f *fakeResumeStore) GetResumeByID(_ context.Context, id string) (*domain.Resume, error) {
	r, ok := f.resumes[id]
	if !ok {
		return nil, port.ErrResumeNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeResumeStore) GetResumeByUserID(_ context.Context, userID string) (*domain.Resume, error) {
	for _, r := range f.resumes {
		if r.UserID == userID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, port.ErrResumeNotFound
}

func (f *fakeResumeStore) GetResumeByEmail(_ context.Context, email string) (*domain.Resume, error) {
	for _, r := range f.resumes {
		if r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, port.ErrResumeNotFound
}

func (f *fakeResumeStore) UpdateResume(_ context.Context, r *domain.Resume) error {
	if _, ok := f.resumes[r.ID]; !ok {
		return port.ErrResumeNotFound
	}
	cp := *r
	f.resumes[r.ID] = &cp
	return nil
}

func (f *fakeResumeStore) DeleteResume(_ context.Context, id string) error {
	if _, ok := f.resumes[id]; !ok {
		return port.ErrResumeNotFound
	}
	delete(f.resumes, id)
	return nil
}

func samplePayload() domain.IngestResume {
	return domain.IngestResume{
		Personal: &domain.IngestPersonal{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Phone: "555-0100",
		},
		Experience: []domain.IngestExperience{
			{
				Company:      "Analytical Engines Ltd",
				Role:         "Programmer",
				Description:  "Wrote the first algorithm\nDocumented the engine",
				Achievements: "Published detailed notes",
			},
			{Company: "", Role: "Ghost"}, // skipped: no company
		},
		Projects: []domain.IngestProject{
			{Title: "Difference Engine", Description: "Designed gears\nVerified tables"},
			{Title: ""}, // skipped: no title
		},
		Education: []domain.IngestEducation{
			{Institution: "Home Tutoring", Degree: "Mathematics"},
			{Institution: "", Degree: "Dropped"}, // skipped
		},
		Skills: []domain.IngestSkill{
			{SkillName: "  Mathematics  ", Category: "core"},
			{SkillName: "   "}, // skipped: blank
		},
	}
}

func TestTransformIngest(t *testing.T) {
	resume, err := transformIngest("user-1", samplePayload())
	require.NoError(t, err)

	assert.Equal(t, "user-1", resume.UserID)
	assert.Equal(t, "ada@example.com", resume.Email)
	assert.Equal(t, "Ada", resume.FirstName)
	assert.Equal(t, "Lovelace", resume.LastName)

	require.Len(t, resume.WorkExperience, 1)
	work := resume.WorkExperience[0]
	assert.Equal(t, "Programmer", work.JobTitle)
	assert.True(t, len(work.WorkExID) > len("work-"))
	assert.Equal(t, []string{
		"Wrote the first algorithm",
		"Documented the engine",
		"Published detailed notes",
	}, work.DescriptionBullets)

	require.Len(t, resume.Projects, 1)
	assert.Equal(t, "Difference Engine", resume.Projects[0].ProjectName)
	assert.Equal(t, []string{"Designed gears", "Verified tables"}, resume.Projects[0].DescriptionBullets)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "Home Tutoring", resume.Education[0].InstitutionName)

	require.Len(t, resume.Skills, 1)
	assert.Equal(t, "Mathematics", resume.Skills[0].SkillName)
}

func TestTransformIngestRequiresPersonal(t *testing.T) {
	cases := []struct {
		name    string
		payload domain.IngestResume
	}{
		{"nil personal", domain.IngestResume{}},
		{"blank name", domain.IngestResume{Personal: &domain.IngestPersonal{Name: " ", Email: "a@b.c"}}},
		{"blank email", domain.IngestResume{Personal: &domain.IngestPersonal{Name: "Ada", Email: ""}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transformIngest("user-1", tc.payload)
			assert.ErrorIs(t, err, port.ErrPersonalRequired)
		})
	}
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Ada Lovelace King")
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "Lovelace King", last)

	first, last = splitName("Plato")
	assert.Equal(t, "Plato", first)
	assert.Empty(t, last)
}

func TestResumeServiceOwnership(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)
	ctx := context.Background()

	created, err := svc.CreateFromIngest(ctx, "user-1", samplePayload())
	require.NoError(t, err)

	t.Run("owner reads own resume", func(t *testing.T) {
		got, err := svc.GetByID(ctx, created.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := svc.GetByID(ctx, created.ID, "user-2")
		assert.ErrorIs(t, err, port.ErrForbidden)
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, created.ID, "user-2")
		assert.ErrorIs(t, err, port.ErrForbidden)
	})

	t.Run("second resume for same user conflicts", func(t *testing.T) {
		_, err := svc.CreateFromIngest(ctx, "user-1", samplePayload())
		assert.ErrorIs(t, err, port.ErrResumeExists)
	})
}

func TestResumeServiceUpdatePreservesIdentity(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)
	ctx := context.Background()

	created, err := svc.CreateFromIngest(ctx, "user-1", samplePayload())
	require.NoError(t, err)

	// make the stored created_at observable
	store.resumes[created.ID].CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	payload := samplePayload()
	payload.Personal.Name = "Ada King"

	updated, err := svc.Update(ctx, created.ID, "user-1", payload)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), updated.CreatedAt)
	assert.Equal(t, "King", updated.LastName)
}

func TestResumeServiceFetchItems(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)
	ctx := context.Background()

	created, err := svc.CreateFromIngest(ctx, "user-1", samplePayload())
	require.NoError(t, err)

	work, projects, err := svc.FetchItems(ctx, created.ID, "user-1")
	require.NoError(t, err)
	assert.Len(t, work, 1)
	assert.Len(t, projects, 1)

	_, _, err = svc.FetchItems(ctx, "resume-missing", "user-1")
	assert.ErrorIs(t, err, port.ErrResumeNotFound)
}
