// ABOUTME: Categorical types produced by message extraction: diets, goals, injuries, frequencies.
// ABOUTME: String-valued enums so they double as catalog keys and JSON values.

package extract

// GoalCategory classifies what a fitness goal is aiming for.
type GoalCategory string

const (
	GoalWeightLoss GoalCategory = "weight_loss"
	GoalWeightGain GoalCategory = "weight_gain"
	GoalFitness    GoalCategory = "fitness"
)

// DietType is a recognized dietary preference.
type DietType string

const (
	DietVegetarian DietType = "vegetarian"
	DietVegan      DietType = "vegan"
	DietKeto       DietType = "keto"
	DietPaleo      DietType = "paleo"
	DietOmnivore   DietType = "omnivore"
)

// NutritionTopic is the subject of a nutrition consultation.
type NutritionTopic string

const (
	NutritionDiabetes  NutritionTopic = "diabetes"
	NutritionAllergies NutritionTopic = "allergies"
	NutritionGeneral   NutritionTopic = "general"
)

// InjuryType is the body area of an injury consultation.
type InjuryType string

const (
	InjuryKnee     InjuryType = "knee"
	InjuryBack     InjuryType = "back"
	InjuryShoulder InjuryType = "shoulder"
	InjuryGeneral  InjuryType = "general"
)

// Frequency is how often check-ins happen.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Days returns the check-in interval in days.
func (f Frequency) Days() int {
	if f == FrequencyDaily {
		return 1
	}
	return 7
}

// WorkoutType distinguishes strength from cardio programming.
type WorkoutType string

const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutCardio   WorkoutType = "cardio"
)

// Experience is the user's training experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Goal is the structured form of a free-text fitness goal.
type Goal struct {
	Quantity    float64      `json:"quantity,omitempty"`
	HasQuantity bool         `json:"-"`
	Unit        string       `json:"unit,omitempty"`
	Duration    string       `json:"duration,omitempty"`
	Category    GoalCategory `json:"category"`
	RawText     string       `json:"raw_text"`
}

// WorkoutPrefs is the structured form of a free-text workout preference.
type WorkoutPrefs struct {
	Experience Experience
	Type       WorkoutType
}
