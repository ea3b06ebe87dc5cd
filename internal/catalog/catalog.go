// ABOUTME: Read-only template catalog: meal, workout, injury, and nutrition tables.
// ABOUTME: Authored as embedded YAML, parsed once at startup, validated against enum keys.

package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/wellness-planner-go/internal/extract"
)

//go:embed data/*.yaml
var dataFS embed.FS

// MealSlots holds the dish lists for each meal slot of one diet.
type MealSlots struct {
	Breakfast []string `yaml:"breakfast"`
	Lunch     []string `yaml:"lunch"`
	Dinner    []string `yaml:"dinner"`
	Snack     []string `yaml:"snack"`
}

// WorkoutDay is one entry of a weekly plan. Strength and recovery days set
// Focus and Exercises; cardio days set Activity. Duration and Notes are
// filled where the template provides them.
type WorkoutDay struct {
	Day       string   `yaml:"day" json:"day"`
	Focus     string   `yaml:"focus" json:"focus,omitempty"`
	Activity  string   `yaml:"activity" json:"activity,omitempty"`
	Exercises []string `yaml:"exercises" json:"exercises,omitempty"`
	Duration  string   `yaml:"duration" json:"duration,omitempty"`
	Notes     string   `yaml:"notes" json:"notes,omitempty"`
}

// Recommendation is a canned piece of advice with its rationale.
type Recommendation struct {
	Category       string `yaml:"category" json:"category"`
	Priority       string `yaml:"priority" json:"priority"`
	Recommendation string `yaml:"recommendation" json:"recommendation"`
	Reason         string `yaml:"reason" json:"reason"`
}

// Resource is a pointer to educational material.
type Resource struct {
	Title       string `yaml:"title" json:"title"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
}

// InjuryAnalysis describes what an injury affects and which movements are safe.
type InjuryAnalysis struct {
	Severity       string   `yaml:"severity" json:"severity"`
	AffectedAreas  []string `yaml:"affected_areas" json:"affected_areas"`
	SafeMovements  []string `yaml:"safe_movements" json:"safe_movements"`
	AvoidMovements []string `yaml:"avoid_movements" json:"avoid_movements"`
}

// InjuryProfile bundles everything the injury responder needs for one injury type.
type InjuryProfile struct {
	Analysis            InjuryAnalysis  `yaml:"analysis"`
	RecoveryPlan        []WorkoutDay    `yaml:"recovery_plan"`
	ExtraRecommendation *Recommendation `yaml:"extra_recommendation"`
	ExtraGuideline      string          `yaml:"extra_guideline"`
}

// NutritionTopicAdvice bundles the per-topic consultation content.
type NutritionTopicAdvice struct {
	Recommendations []Recommendation `yaml:"recommendations"`
	ExtraNote       string           `yaml:"extra_note"`
}

type mealsFile struct {
	Templates   map[extract.DietType]MealSlots `yaml:"templates"`
	Tips        map[extract.DietType][]string  `yaml:"tips"`
	GenericTips []string                       `yaml:"generic_tips"`
}

type workoutsFile struct {
	Strength map[extract.Experience][]WorkoutDay `yaml:"strength"`
	Cardio   map[extract.Experience][]WorkoutDay `yaml:"cardio"`
}

type injuriesFile struct {
	Profiles            map[extract.InjuryType]InjuryProfile `yaml:"profiles"`
	BaseRecommendations []Recommendation                     `yaml:"base_recommendations"`
	BaseGuidelines      []string                             `yaml:"base_guidelines"`
}

type nutritionFile struct {
	Topics    map[extract.NutritionTopic]NutritionTopicAdvice `yaml:"topics"`
	BaseNotes []string                                        `yaml:"base_notes"`
	Resources []Resource                                      `yaml:"resources"`
}

// Catalog is the process-wide template store. Load it once at startup and
// treat it as read-only; accessors hand out copies of slice data.
type Catalog struct {
	meals     mealsFile
	workouts  workoutsFile
	injuries  injuriesFile
	nutrition nutritionFile
}

// Load parses the embedded data files and validates enum coverage.
func Load() (*Catalog, error) {
	var c Catalog

	if err := parseData("data/meals.yaml", &c.meals); err != nil {
		return nil, err
	}
	if err := parseData("data/workouts.yaml", &c.workouts); err != nil {
		return nil, err
	}
	if err := parseData("data/injuries.yaml", &c.injuries); err != nil {
		return nil, err
	}
	if err := parseData("data/nutrition.yaml", &c.nutrition); err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}
	return &c, nil
}

func parseData(name string, out any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// validate checks that every categorical key the extractors can produce has
// a catalog entry. Paleo is deliberately absent from the meal tables; it
// falls back to omnivore like any unrecognized diet.
func (c *Catalog) validate() error {
	for _, d := range []extract.DietType{extract.DietVegetarian, extract.DietVegan, extract.DietKeto, extract.DietOmnivore} {
		slots, ok := c.meals.Templates[d]
		if !ok {
			return fmt.Errorf("missing meal templates for diet %q", d)
		}
		if len(slots.Breakfast) == 0 || len(slots.Lunch) == 0 || len(slots.Dinner) == 0 || len(slots.Snack) == 0 {
			return fmt.Errorf("diet %q has an empty meal slot", d)
		}
		if _, ok := c.meals.Tips[d]; !ok {
			return fmt.Errorf("missing meal tips for diet %q", d)
		}
	}

	levels := []extract.Experience{extract.ExperienceBeginner, extract.ExperienceIntermediate, extract.ExperienceAdvanced}
	for _, table := range []map[extract.Experience][]WorkoutDay{c.workouts.Strength, c.workouts.Cardio} {
		for _, lvl := range levels {
			if len(table[lvl]) == 0 {
				return fmt.Errorf("missing workout template for level %q", lvl)
			}
		}
	}

	for _, t := range []extract.InjuryType{extract.InjuryKnee, extract.InjuryBack, extract.InjuryShoulder, extract.InjuryGeneral} {
		p, ok := c.injuries.Profiles[t]
		if !ok {
			return fmt.Errorf("missing injury profile for %q", t)
		}
		if len(p.RecoveryPlan) == 0 {
			return fmt.Errorf("injury profile %q has no recovery plan", t)
		}
	}

	for _, t := range []extract.NutritionTopic{extract.NutritionDiabetes, extract.NutritionAllergies, extract.NutritionGeneral} {
		a, ok := c.nutrition.Topics[t]
		if !ok {
			return fmt.Errorf("missing nutrition topic %q", t)
		}
		if len(a.Recommendations) == 0 {
			return fmt.Errorf("nutrition topic %q has no recommendations", t)
		}
	}

	return nil
}

// MealTemplates returns the slot lists for a diet, falling back to omnivore
// for diets without their own table (paleo, unknown).
func (c *Catalog) MealTemplates(d extract.DietType) MealSlots {
	if slots, ok := c.meals.Templates[d]; ok {
		return MealSlots{
			Breakfast: copyStrings(slots.Breakfast),
			Lunch:     copyStrings(slots.Lunch),
			Dinner:    copyStrings(slots.Dinner),
			Snack:     copyStrings(slots.Snack),
		}
	}
	return c.MealTemplates(extract.DietOmnivore)
}

// MealTips returns the tips for a diet, falling back to the generic list.
func (c *Catalog) MealTips(d extract.DietType) []string {
	if tips, ok := c.meals.Tips[d]; ok {
		return copyStrings(tips)
	}
	return copyStrings(c.meals.GenericTips)
}

// WorkoutPlan returns the weekly template for the given type and level.
func (c *Catalog) WorkoutPlan(t extract.WorkoutType, lvl extract.Experience) ([]WorkoutDay, error) {
	table := c.workouts.Strength
	if t == extract.WorkoutCardio {
		table = c.workouts.Cardio
	}
	days, ok := table[lvl]
	if !ok {
		return nil, fmt.Errorf("no %s template for level %q", t, lvl)
	}
	return copyDays(days), nil
}

// InjuryProfile returns the consultation bundle for an injury type.
// Unknown types get the general profile.
func (c *Catalog) InjuryProfile(t extract.InjuryType) InjuryProfile {
	p, ok := c.injuries.Profiles[t]
	if !ok {
		p = c.injuries.Profiles[extract.InjuryGeneral]
	}
	out := InjuryProfile{
		Analysis: InjuryAnalysis{
			Severity:       p.Analysis.Severity,
			AffectedAreas:  copyStrings(p.Analysis.AffectedAreas),
			SafeMovements:  copyStrings(p.Analysis.SafeMovements),
			AvoidMovements: copyStrings(p.Analysis.AvoidMovements),
		},
		RecoveryPlan:   copyDays(p.RecoveryPlan),
		ExtraGuideline: p.ExtraGuideline,
	}
	if p.ExtraRecommendation != nil {
		rec := *p.ExtraRecommendation
		out.ExtraRecommendation = &rec
	}
	return out
}

// InjuryBaseRecommendations returns the shared recommendation list.
func (c *Catalog) InjuryBaseRecommendations() []Recommendation {
	return append([]Recommendation(nil), c.injuries.BaseRecommendations...)
}

// InjuryBaseGuidelines returns the shared safety guideline list.
func (c *Catalog) InjuryBaseGuidelines() []string {
	return copyStrings(c.injuries.BaseGuidelines)
}

// NutritionTopic returns the consultation bundle for a topic.
// Unknown topics get the general bundle.
func (c *Catalog) NutritionTopic(t extract.NutritionTopic) NutritionTopicAdvice {
	a, ok := c.nutrition.Topics[t]
	if !ok {
		a = c.nutrition.Topics[extract.NutritionGeneral]
	}
	return NutritionTopicAdvice{
		Recommendations: append([]Recommendation(nil), a.Recommendations...),
		ExtraNote:       a.ExtraNote,
	}
}

// NutritionBaseNotes returns the notes shared by every consultation.
func (c *Catalog) NutritionBaseNotes() []string {
	return copyStrings(c.nutrition.BaseNotes)
}

// NutritionResources returns the resource list shared by every consultation.
func (c *Catalog) NutritionResources() []Resource {
	return append([]Resource(nil), c.nutrition.Resources...)
}

func copyStrings(in []string) []string {
	return append([]string(nil), in...)
}

func copyDays(in []WorkoutDay) []WorkoutDay {
	out := make([]WorkoutDay, len(in))
	for i, d := range in {
		d.Exercises = copyStrings(d.Exercises)
		out[i] = d
	}
	return out
}
