package workout

import "time"

type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

func (l DifficultyLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

type Exercise struct {
	Name     string `json:"name" firestore:"name"`
	Sets     int    `json:"sets" firestore:"sets"`
	Reps     *int   `json:"reps,omitempty" firestore:"reps,omitempty"`
	Duration *int   `json:"duration,omitempty" firestore:"duration,omitempty"`
}

type Workout struct {
	ID                  string          `json:"id" firestore:"id"`
	Title               string          `json:"title" firestore:"title"`
	Description         string          `json:"description" firestore:"description"`
	DifficultyLevel     DifficultyLevel `json:"difficultyLevel" firestore:"difficultyLevel"`
	TargetFitnessLevels []string        `json:"targetFitnessLevels" firestore:"targetFitnessLevels"`
	Exercises           []Exercise      `json:"exercises" firestore:"exercises"`
	EstimatedDuration   int             `json:"estimatedDuration" firestore:"estimatedDuration"`
	EstimatedCalories   int             `json:"estimatedCalories" firestore:"estimatedCalories"`
	CreatedAt           time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt" firestore:"updatedAt"`
}

// Update carries the mutable fields of a workout. Nil fields are left untouched.
type Update struct {
	Title               *string     `structs:"title,omitempty"`
	Description         *string     `structs:"description,omitempty"`
	DifficultyLevel     *string     `structs:"difficultyLevel,omitempty"`
	TargetFitnessLevels *[]string   `structs:"targetFitnessLevels,omitempty"`
	Exercises           *[]Exercise `structs:"exercises,omitempty"`
	EstimatedDuration   *int        `structs:"estimatedDuration,omitempty"`
	EstimatedCalories   *int        `structs:"estimatedCalories,omitempty"`
}
