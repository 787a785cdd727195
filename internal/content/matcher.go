package content

import "sort"

const (
	MaxScriptures = 2
	MaxPrayers    = 1
	MaxActions    = 3

	rootWeight     = 1.0
	categoryWeight = 0.5
)

type Plan struct {
	Scriptures []Scripture `json:"scriptures"`
	Prayers    []Prayer    `json:"prayers"`
	Actions    []Action    `json:"actions"`
}

type tagged interface {
	tags() Tags
}

// Score is |entry roots ∩ roots| + 0.5 × |entry categories ∩ categories|.
func Score(t Tags, roots map[Root]struct{}, categories map[Category]struct{}) float64 {
	var score float64
	for _, r := range t.Roots {
		if _, ok := roots[r]; ok {
			score += rootWeight
		}
	}
	for _, c := range t.Categories {
		if _, ok := categories[c]; ok {
			score += categoryWeight
		}
	}
	return score
}

// Match ranks the default corpus.
func Match(roots []Root, categories []Category) Plan {
	return Default.Match(roots, categories)
}

// Match returns the top scriptures, prayers and actions for the given roots
// and categories. Zero-score entries never appear; ties keep corpus order.
func (c *Corpus) Match(roots []Root, categories []Category) Plan {
	rootSet := make(map[Root]struct{}, len(roots))
	for _, r := range roots {
		rootSet[r] = struct{}{}
	}
	catSet := make(map[Category]struct{}, len(categories))
	for _, cat := range categories {
		catSet[cat] = struct{}{}
	}
	return Plan{
		Scriptures: rank(c.Scriptures, rootSet, catSet, MaxScriptures),
		Prayers:    rank(c.Prayers, rootSet, catSet, MaxPrayers),
		Actions:    rank(c.Actions, rootSet, catSet, MaxActions),
	}
}

func rank[T tagged](items []T, roots map[Root]struct{}, categories map[Category]struct{}, limit int) []T {
	type scored struct {
		item  T
		score float64
	}
	candidates := make([]scored, 0, len(items))
	for _, it := range items {
		s := Score(it.tags(), roots, categories)
		if s == 0 {
			continue
		}
		candidates = append(candidates, scored{item: it, score: s})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	result := make([]T, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.item)
	}
	return result
}
