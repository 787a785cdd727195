// Package checkin holds the rules applied to a daily check-in before it is
// stored: input validation, emotion grouping and risk routing.
package checkin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

const (
	MaxIntensity = 10
	maxTrigger   = 500

	// Overall intensity at which a check-in is at least moderate / high risk.
	moderateIntensity = 6
	highIntensity     = 9
)

// Next screen after a check-in is saved.
type Route string

const (
	RouteCrisis        Route = "crisis"
	RouteQuestionnaire Route = "questionnaire"
)

// Struggles that always send the user to the crisis flow.
var crisisStruggles = map[string]struct{}{
	"pensamientos-suicidas": {},
	"autolesion":            {},
}

var negativeEmotions = map[string]struct{}{
	"triste":      {},
	"ansioso":     {},
	"enojado":     {},
	"culpable":    {},
	"avergonzado": {},
	"solo":        {},
	"frustrado":   {},
	"vacio":       {},
	"cansado":     {},
	"temeroso":    {},
}

var positiveEmotions = map[string]struct{}{
	"agradecido":  {},
	"en-paz":      {},
	"esperanzado": {},
	"alegre":      {},
	"motivado":    {},
	"amado":       {},
}

// Input is a check-in as submitted by the client.
type Input struct {
	Struggles           []string       `json:"struggles"`
	StruggleIntensities map[string]int `json:"struggle_intensities"`
	Intensity           int            `json:"intensity"`
	Trigger             *string        `json:"trigger"`
	Emotions            []string       `json:"emotions"`
}

// Normalize trims and de-duplicates identifiers and drops an empty trigger.
// Order of first appearance is kept.
func (in Input) Normalize() Input {
	in.Struggles = dedupe(in.Struggles)
	in.Emotions = dedupe(in.Emotions)
	if in.Trigger != nil {
		t := strings.TrimSpace(*in.Trigger)
		if t == "" {
			in.Trigger = nil
		} else {
			in.Trigger = &t
		}
	}
	if len(in.StruggleIntensities) == 0 {
		in.StruggleIntensities = nil
	}
	return in
}

// Validate reports every problem with a normalized input at once.
func (in Input) Validate() error {
	var errs []error
	if len(in.Struggles) == 0 {
		errs = append(errs, errors.New("at least one struggle is required"))
	}
	if in.Intensity < 0 || in.Intensity > MaxIntensity {
		errs = append(errs, fmt.Errorf("intensity must be between 0 and %d", MaxIntensity))
	}
	listed := make(map[string]struct{}, len(in.Struggles))
	for _, s := range in.Struggles {
		listed[s] = struct{}{}
	}
	for s, v := range in.StruggleIntensities {
		if _, ok := listed[s]; !ok {
			errs = append(errs, fmt.Errorf("intensity given for unlisted struggle %q", s))
		}
		if v < 0 || v > MaxIntensity {
			errs = append(errs, fmt.Errorf("intensity of %q must be between 0 and %d", s, MaxIntensity))
		}
	}
	if in.Trigger != nil && len([]rune(*in.Trigger)) > maxTrigger {
		errs = append(errs, fmt.Errorf("trigger is longer than %d characters", maxTrigger))
	}
	return errors.Join(errs...)
}

// Classify computes the risk of a check-in. The highest per-struggle
// intensity counts when it exceeds the overall one.
func Classify(in Input) entity.Risk {
	for _, s := range in.Struggles {
		if _, ok := crisisStruggles[s]; ok {
			return entity.RiskHigh
		}
	}
	peak := in.Intensity
	for _, v := range in.StruggleIntensities {
		peak = max(peak, v)
	}
	switch {
	case peak >= highIntensity:
		return entity.RiskHigh
	case peak >= moderateIntensity:
		return entity.RiskModerate
	}
	return entity.RiskLow
}

func RouteFor(r entity.Risk) Route {
	if r == entity.RiskHigh {
		return RouteCrisis
	}
	return RouteQuestionnaire
}

// Emotions grouped for display. Identifiers outside both lists are kept in Other.
type EmotionGroups struct {
	Negative []string `json:"negative"`
	Positive []string `json:"positive"`
	Other    []string `json:"other,omitempty"`
}

func Partition(emotions []string) EmotionGroups {
	g := EmotionGroups{Negative: []string{}, Positive: []string{}}
	for _, e := range emotions {
		switch {
		case has(negativeEmotions, e):
			g.Negative = append(g.Negative, e)
		case has(positiveEmotions, e):
			g.Positive = append(g.Positive, e)
		default:
			g.Other = append(g.Other, e)
		}
	}
	return g
}

// IsCrisis reports whether struggle is one of the crisis struggles.
func IsCrisis(struggle string) bool {
	return has(crisisStruggles, struggle)
}

func has(set map[string]struct{}, k string) bool {
	_, ok := set[k]
	return ok
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
