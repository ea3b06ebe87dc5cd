// ABOUTME: Pure text extraction: turns a raw user message into structured fields.
// ABOUTME: Best-effort pattern matching; misses resolve to documented defaults, never errors.

package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRe = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	// Plain substring alternation so attached forms like "5kg" still yield
	// a unit; word boundaries would reject them.
	unitRe         = regexp.MustCompile(`(kg|lbs|pounds)`)
	durationRe     = regexp.MustCompile(`(\d+)\s*(days?|weeks?|months?)`)
	weightRe       = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:kg|lbs)`)
	workoutCountRe = regexp.MustCompile(`(\d+)\s*workout`)
)

// GoalFromText parses a fitness goal out of free text.
// The first numeric literal becomes the quantity, even when it belongs to
// the duration phrase; that matches the original extraction order.
func GoalFromText(text string) Goal {
	lower := strings.ToLower(text)

	g := Goal{
		Category: GoalFitness,
		RawText:  text,
	}

	if m := numberRe.FindStringSubmatch(lower); m != nil {
		// The pattern only matches digits, so this parse cannot fail.
		g.Quantity, _ = strconv.ParseFloat(m[1], 64)
		g.HasQuantity = true
	}
	if m := unitRe.FindStringSubmatch(lower); m != nil {
		g.Unit = m[1]
	}
	if m := durationRe.FindString(lower); m != "" {
		g.Duration = m
	}

	switch {
	case containsAny(lower, "lose", "weight"):
		g.Category = GoalWeightLoss
	case containsAny(lower, "gain", "muscle"):
		g.Category = GoalWeightGain
	}

	return g
}

// DietTypeFromText finds the first recognized diet keyword, defaulting to omnivore.
func DietTypeFromText(text string) DietType {
	lower := strings.ToLower(text)
	for _, d := range []DietType{DietVegetarian, DietVegan, DietKeto} {
		if strings.Contains(lower, string(d)) {
			return d
		}
	}
	return DietOmnivore
}

// NormalizeDiet validates a dietary preference string against the allowed
// diets, defaulting to omnivore. Unlike DietTypeFromText it also admits paleo.
func NormalizeDiet(text string) DietType {
	lower := strings.ToLower(text)
	for _, d := range []DietType{DietVegetarian, DietVegan, DietKeto, DietPaleo, DietOmnivore} {
		if strings.Contains(lower, string(d)) {
			return d
		}
	}
	return DietOmnivore
}

// NutritionTopicFromText picks the consultation subject; diabetes wins over allergies.
func NutritionTopicFromText(text string) NutritionTopic {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "diabetes"):
		return NutritionDiabetes
	case strings.Contains(lower, "allergy"), strings.Contains(lower, "allergic"):
		return NutritionAllergies
	default:
		return NutritionGeneral
	}
}

// InjuryTypeFromText picks the injured area, checked in knee/back/shoulder order.
func InjuryTypeFromText(text string) InjuryType {
	lower := strings.ToLower(text)
	for _, t := range []InjuryType{InjuryKnee, InjuryBack, InjuryShoulder} {
		if strings.Contains(lower, string(t)) {
			return t
		}
	}
	return InjuryGeneral
}

// FrequencyFromText returns daily when the message says so, weekly otherwise.
func FrequencyFromText(text string) Frequency {
	if strings.Contains(strings.ToLower(text), "daily") {
		return FrequencyDaily
	}
	return FrequencyWeekly
}

// WorkoutPrefsFromText parses experience level and workout type from free text.
// Advanced/expert is checked before intermediate; anything else is beginner.
func WorkoutPrefsFromText(text string) WorkoutPrefs {
	lower := strings.ToLower(text)

	prefs := WorkoutPrefs{
		Experience: ExperienceBeginner,
		Type:       WorkoutStrength,
	}

	switch {
	case containsAny(lower, "advanced", "expert"):
		prefs.Experience = ExperienceAdvanced
	case strings.Contains(lower, "intermediate"):
		prefs.Experience = ExperienceIntermediate
	}

	if strings.Contains(lower, "cardio") {
		prefs.Type = WorkoutCardio
	}

	return prefs
}

// RawMetrics holds progress figures as captured from the message, before
// numeric coercion. Empty strings mean the pattern did not match.
type RawMetrics struct {
	Weight   string
	Workouts string
	Notes    string
}

// Metrics is the coerced form of RawMetrics. Absent fields keep their
// Has flag false and are omitted wherever the metrics are serialized.
type Metrics struct {
	Weight      float64
	HasWeight   bool
	Workouts    int
	HasWorkouts bool
	Notes       string
}

// RawMetricsFromText captures the first weight and workout-count figures.
func RawMetricsFromText(text string) RawMetrics {
	lower := strings.ToLower(text)

	raw := RawMetrics{Notes: text}
	if m := weightRe.FindStringSubmatch(lower); m != nil {
		raw.Weight = m[1]
	}
	if m := workoutCountRe.FindStringSubmatch(lower); m != nil {
		raw.Workouts = m[1]
	}
	return raw
}

// Coerce converts captured figures to numbers. A malformed figure is a
// coercion failure the owning module must turn into an error reply.
func (r RawMetrics) Coerce() (Metrics, error) {
	m := Metrics{Notes: r.Notes}

	if r.Weight != "" {
		w, err := strconv.ParseFloat(r.Weight, 64)
		if err != nil {
			return Metrics{}, fmt.Errorf("invalid weight %q: %w", r.Weight, err)
		}
		m.Weight = w
		m.HasWeight = true
	}

	if r.Workouts != "" {
		n, err := strconv.Atoi(r.Workouts)
		if err != nil {
			return Metrics{}, fmt.Errorf("invalid workout count %q: %w", r.Workouts, err)
		}
		m.Workouts = n
		m.HasWorkouts = true
	}

	return m, nil
}

// containsAny reports whether s contains at least one of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
