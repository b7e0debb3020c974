package user

import "time"

type FitnessLevel string

const (
	Beginner     FitnessLevel = "beginner"
	Intermediate FitnessLevel = "intermediate"
	Advanced     FitnessLevel = "advanced"
)

// Valid reports whether the level is one of the known fitness levels.
func (l FitnessLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

type User struct {
	ID           string       `json:"id" firestore:"id"`
	Username     string       `json:"username" firestore:"username"`
	Email        string       `json:"email" firestore:"email"`
	FirstName    string       `json:"firstName" firestore:"firstName"`
	LastName     string       `json:"lastName" firestore:"lastName"`
	FitnessLevel FitnessLevel `json:"fitnessLevel" firestore:"fitnessLevel"`
	// TotalPoints is persisted for wire compatibility but never recomputed;
	// the leaderboard recomputes totals from activities on every read.
	TotalPoints int       `json:"totalPoints" firestore:"totalPoints"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Update carries the mutable fields of a user. Nil fields are left untouched.
type Update struct {
	Username     *string `structs:"username,omitempty"`
	Email        *string `structs:"email,omitempty"`
	FirstName    *string `structs:"firstName,omitempty"`
	LastName     *string `structs:"lastName,omitempty"`
	FitnessLevel *string `structs:"fitnessLevel,omitempty"`
}
