package api

import (
	"fittrack/services/activity"
	"fittrack/services/team"
	"fittrack/services/user"
	"fittrack/services/workout"
)

func ToUser(u user.User) User {
	return User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		FitnessLevel: string(u.FitnessLevel),
		TotalPoints:  u.TotalPoints,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func ToUsers(users []user.User) []User {
	result := make([]User, 0, len(users))
	for _, u := range users {
		result = append(result, ToUser(u))
	}
	return result
}

func ToTeam(t team.Team) Team {
	memberIDs := t.MemberIDs
	if memberIDs == nil {
		memberIDs = []string{}
	}
	return Team{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CaptainID:   t.CaptainID,
		MemberIDs:   memberIDs,
		TotalPoints: t.TotalPoints,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTeams(teams []team.Team) []Team {
	result := make([]Team, 0, len(teams))
	for _, t := range teams {
		result = append(result, ToTeam(t))
	}
	return result
}

func ToActivity(a activity.Activity) Activity {
	return Activity{
		ID:           a.ID,
		UserID:       a.UserID,
		ActivityType: a.ActivityType,
		Duration:     a.Duration,
		Distance:     a.Distance,
		Calories:     a.Calories,
		Points:       a.Points,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
	}
}

func ToActivities(activities []activity.Activity) []Activity {
	result := make([]Activity, 0, len(activities))
	for _, a := range activities {
		result = append(result, ToActivity(a))
	}
	return result
}

func ToWorkout(w workout.Workout) Workout {
	exercises := make([]Exercise, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, Exercise{
			Name:     e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Duration: e.Duration,
		})
	}
	levels := w.TargetFitnessLevels
	if levels == nil {
		levels = []string{}
	}
	return Workout{
		ID:                  w.ID,
		Title:               w.Title,
		Description:         w.Description,
		DifficultyLevel:     string(w.DifficultyLevel),
		TargetFitnessLevels: levels,
		Exercises:           exercises,
		EstimatedDuration:   w.EstimatedDuration,
		EstimatedCalories:   w.EstimatedCalories,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
	}
}

func ToWorkouts(workouts []workout.Workout) []Workout {
	result := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		result = append(result, ToWorkout(w))
	}
	return result
}
