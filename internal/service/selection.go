package service

import "resume-builder/internal/domain"

// CategoryCaps limits how many items of each category survive selection.
type CategoryCaps struct {
	WorkExperiences int
	Projects        int
}

// selectTopItems walks the ranked list in order and keeps items until
// each category's cap is filled. A category with fewer items than its
// cap keeps whatever it has; nothing is padded.
func selectTopItems(ranked []domain.RankableItem, caps CategoryCaps) []domain.RankableItem {
	counts := map[domain.ItemCategory]int{}
	limits := map[domain.ItemCategory]int{
		domain.CategoryWorkExperience: caps.WorkExperiences,
		domain.CategoryProject:        caps.Projects,
	}

	var selected []domain.RankableItem
	for _, item := range ranked {
		if counts[item.Category] >= limits[item.Category] {
			continue
		}
		selected = append(selected, item)
		counts[item.Category]++
	}
	return selected
}
