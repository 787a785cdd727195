package content

import (
	"errors"
	"fmt"
)

// Validate checks the taxonomy and the corpus against each other. Every
// taxonomy root must map to a known category, and every corpus entry may only
// reference taxonomy roots and known categories.
func (c *Corpus) Validate() error {
	var errs []error
	seenRoots := make(map[Root]struct{}, len(Taxonomy))
	for _, info := range Taxonomy {
		if _, dup := seenRoots[info.ID]; dup {
			errs = append(errs, fmt.Errorf("root %q declared twice", info.ID))
		}
		seenRoots[info.ID] = struct{}{}
		if !validCategory(info.Category) {
			errs = append(errs, fmt.Errorf("root %q mapped to unknown category %q", info.ID, info.Category))
		}
	}
	check := func(kind, id string, t Tags, seen map[string]struct{}) {
		if id == "" {
			errs = append(errs, fmt.Errorf("%s without id", kind))
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("%s %q declared twice", kind, id))
		}
		seen[id] = struct{}{}
		if len(t.Roots) == 0 && len(t.Categories) == 0 {
			errs = append(errs, fmt.Errorf("%s %q has no tags", kind, id))
		}
		for _, r := range t.Roots {
			if _, ok := categoryOf[r]; !ok {
				errs = append(errs, fmt.Errorf("%s %q references unknown root %q", kind, id, r))
			}
		}
		for _, cat := range t.Categories {
			if !validCategory(cat) {
				errs = append(errs, fmt.Errorf("%s %q references unknown category %q", kind, id, cat))
			}
		}
	}
	seen := make(map[string]struct{})
	for _, s := range c.Scriptures {
		check("scripture", s.ID, s.Tags, seen)
	}
	seen = make(map[string]struct{})
	for _, p := range c.Prayers {
		check("prayer", p.ID, p.Tags, seen)
	}
	seen = make(map[string]struct{})
	for _, a := range c.Actions {
		check("action", a.ID, a.Tags, seen)
		switch a.Difficulty {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		default:
			errs = append(errs, fmt.Errorf("action %q has unknown difficulty %q", a.ID, a.Difficulty))
		}
		switch a.Type {
		case ActionSpiritual, ActionPractical, ActionCommunity:
		default:
			errs = append(errs, fmt.Errorf("action %q has unknown type %q", a.ID, a.Type))
		}
	}
	return errors.Join(errs...)
}
