package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"resume-builder/internal/domain"
	"resume-builder/internal/port"
)

// ItemSource provides the résumé entries the ranking pipeline operates on.
type ItemSource interface {
	FetchItems(ctx context.Context, resumeID, callerID string) ([]domain.WorkExperience, []domain.Project, error)
}

// BulletSummarizer rewrites one item's bullets; failures are reported in
// the result, never as an error.
type BulletSummarizer interface {
	Summarize(ctx context.Context, category domain.ItemCategory, title string, bullets []string) domain.SummaryResult
}

// RankService runs the rank-and-summarize pipeline: embed the job
// description and every résumé item, rank by cosine similarity, keep the
// top items per category, and rewrite their bullets in parallel.
type RankService struct {
	items      ItemSource
	embedder   port.Embedder
	summarizer BulletSummarizer
	caps       CategoryCaps
}

// NewRankService creates the pipeline orchestrator. Either AI dependency
// may be nil when unconfigured; ranking then fails fast with the matching
// sentinel error.
func NewRankService(items ItemSource, embedder port.Embedder, summarizer BulletSummarizer, caps CategoryCaps) *RankService {
	return &RankService{items: items, embedder: embedder, summarizer: summarizer, caps: caps}
}

// RankAndSummarize ranks a résumé's entries against a job description and
// returns the top items of each category with rewritten bullets. Items
// whose rewrite fails keep their original bullets.
func (s *RankService) RankAndSummarize(ctx context.Context, resumeID, callerID, jobDescription string) (*domain.RankResult, error) {
	if s.embedder == nil {
		return nil, port.ErrEmbedderUnavailable
	}
	if s.summarizer == nil {
		return nil, port.ErrSummarizerUnavailable
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description must not be empty", port.ErrInvalidInput)
	}

	work, projects, err := s.items.FetchItems(ctx, resumeID, callerID)
	if err != nil {
		return nil, err
	}

	workByID := make(map[string]domain.WorkExperience, len(work))
	projByID := make(map[string]domain.Project, len(projects))
	items := make([]domain.RankableItem, 0, len(work)+len(projects))
	for _, w := range work {
		workByID[w.WorkExID] = w
		items = append(items, domain.RankableItem{
			ID:       w.WorkExID,
			Category: domain.CategoryWorkExperience,
			Text:     strings.Join(w.DescriptionBullets, ". "),
		})
	}
	for _, p := range projects {
		projByID[p.ProjectID] = p
		items = append(items, domain.RankableItem{
			ID:       p.ProjectID,
			Category: domain.CategoryProject,
			Text:     strings.Join(p.DescriptionBullets, ". "),
		})
	}

	result := &domain.RankResult{
		TopWorkExperiences: []domain.RankedWorkExperience{},
		TopProjects:        []domain.RankedProject{},
	}
	if len(items) == 0 {
		return result, nil
	}

	queryVec, err := s.embedder.Embed(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("embed job description: %w", err)
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	itemVecs, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed resume items: %w", err)
	}

	ranked := rankBySimilarity(queryVec, items, itemVecs)
	selected := selectTopItems(ranked, s.caps)

	// Rewrite all selected items concurrently; a failed rewrite keeps the
	// item's original bullets rather than failing the request.
	summaries := make([]domain.SummaryResult, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range selected {
		g.Go(func() error {
			title, bullets := s.itemDetails(item, workByID, projByID)
			summaries[i] = s.summarizer.Summarize(gctx, item.Category, title, bullets)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, item := range selected {
		summary := summaries[i]
		if !summary.Success {
			slog.Warn("keeping original bullets after failed rewrite",
				"item_id", item.ID,
				"error", summary.ErrorDetail,
			)
		}

		switch item.Category {
		case domain.CategoryWorkExperience:
			entry := workByID[item.ID]
			if summary.Success {
				entry.DescriptionBullets = summary.Bullets
			}
			result.TopWorkExperiences = append(result.TopWorkExperiences, domain.RankedWorkExperience{
				WorkExperience: entry,
				Score:          item.Score,
			})
		case domain.CategoryProject:
			entry := projByID[item.ID]
			if summary.Success {
				entry.DescriptionBullets = summary.Bullets
			}
			result.TopProjects = append(result.TopProjects, domain.RankedProject{
				Project: entry,
				Score:   item.Score,
			})
		}
	}

	sort.SliceStable(result.TopWorkExperiences, func(i, j int) bool {
		return result.TopWorkExperiences[i].Score > result.TopWorkExperiences[j].Score
	})
	sort.SliceStable(result.TopProjects, func(i, j int) bool {
		return result.TopProjects[i].Score > result.TopProjects[j].Score
	})

	slog.Info("rank pipeline completed",
		"resume_id", resumeID,
		"candidates", len(items),
		"selected", len(selected),
	)
	return result, nil
}

func (s *RankService) itemDetails(item domain.RankableItem, work map[string]domain.WorkExperience, projects map[string]domain.Project) (string, []string) {
	if item.Category == domain.CategoryWorkExperience {
		w := work[item.ID]
		return w.JobTitle, w.DescriptionBullets
	}
	p := projects[item.ID]
	return p.ProjectName, p.DescriptionBullets
}
