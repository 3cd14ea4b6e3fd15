package domain

// ItemCategory identifies which résumé collection a rankable item came from.
type ItemCategory string

const (
	CategoryWorkExperience ItemCategory = "work_experience"
	CategoryProject        ItemCategory = "project"
)

// RankableItem is the transient ranking view of one résumé entry. It is
// built per request from stored fields and discarded once the response is
// assembled; the score is never persisted.
type RankableItem struct {
	ID       string
	Category ItemCategory
	Text     string // description bullets joined for embedding
	Score    float64
}

// RankedWorkExperience is a work experience plus its similarity score.
type RankedWorkExperience struct {
	WorkExperience
	Score float64 `json:"score"`
}

// RankedProject is a project plus its similarity score.
type RankedProject struct {
	Project
	Score float64 `json:"score"`
}

// RankResult is the response of the rank-and-summarize pipeline: the
// selected items of each category, ordered by descending score.
type RankResult struct {
	TopWorkExperiences []RankedWorkExperience `json:"top_work_experiences"`
	TopProjects        []RankedProject        `json:"top_projects"`
}

// SummaryResult is the outcome of summarizing one item's bullets. On
// success Bullets replaces the item's previous bullet list; on failure the
// item keeps its original bullets and ErrorDetail records the last error.
// Token counts are informational only.
type SummaryResult struct {
	Bullets          []string
	Success          bool
	ErrorDetail      string
	PromptTokens     int
	CompletionTokens int
}
