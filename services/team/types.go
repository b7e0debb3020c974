package team

import "time"

type Team struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description" firestore:"description"`
	CaptainID   string   `json:"captainId" firestore:"captainId"`
	// MemberIDs is semantically a set of user ids, stored as an ordered list.
	MemberIDs   []string  `json:"memberIds" firestore:"memberIds"`
	TotalPoints int       `json:"totalPoints" firestore:"totalPoints"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Update carries the mutable fields of a team. Nil fields are left untouched.
type Update struct {
	Name        *string `structs:"name,omitempty"`
	Description *string `structs:"description,omitempty"`
	CaptainID   *string `structs:"captainId,omitempty"`
}
