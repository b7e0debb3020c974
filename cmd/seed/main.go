// Command seed wipes the fittrack collections and repopulates them with
// sample data. Intended for local development and demos only.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"google.golang.org/api/iterator"

	"fittrack/clients/gcp"
	"fittrack/envvars"
	"fittrack/generator"
	"fittrack/services/activity"
	"fittrack/services/leaderboard"
	"fittrack/services/team"
	"fittrack/services/user"
	"fittrack/services/workout"
	"fittrack/utils"
)

var collections = []string{"users", "teams", "activities", "leaderboard", "workouts"}

var activityTypes = []string{"running", "cycling", "swimming", "strength", "yoga", "hiking"}

type hero struct {
	username string
	email    string
	first    string
	last     string
	level    user.FitnessLevel
}

var marvelHeroes = []hero{
	{"ironman", "ironman@marvel.com", "Tony", "Stark", user.Advanced},
	{"captainamerica", "captainamerica@marvel.com", "Steve", "Rogers", user.Advanced},
	{"blackwidow", "blackwidow@marvel.com", "Natasha", "Romanoff", user.Intermediate},
	{"hulk", "hulk@marvel.com", "Bruce", "Banner", user.Beginner},
	{"thor", "thor@marvel.com", "Thor", "Odinson", user.Advanced},
}

var dcHeroes = []hero{
	{"batman", "batman@dc.com", "Bruce", "Wayne", user.Advanced},
	{"superman", "superman@dc.com", "Clark", "Kent", user.Advanced},
	{"wonderwoman", "wonderwoman@dc.com", "Diana", "Prince", user.Intermediate},
	{"flash", "flash@dc.com", "Barry", "Allen", user.Intermediate},
	{"aquaman", "aquaman@dc.com", "Arthur", "Curry", user.Beginner},
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}
	env := envvars.GetEvn()
	ctx := context.Background()

	db := gcp.CreateFirestore(ctx, env.ProjectID)
	defer db.Close()

	slog.Info("Clearing existing data")
	for _, name := range collections {
		if err := deleteAll(ctx, db, name); err != nil {
			log.Fatalf("failed to clear collection %s: %v", name, err)
		}
	}

	userService := user.NewService(db)
	activityService := activity.NewService(db, userService)
	teamService := team.NewService(db, userService)
	workoutService := workout.NewService(db)
	leaderboardService := leaderboard.NewService(db, userService, activityService)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	slog.Info("Populating users")
	marvelIDs, err := seedUsers(ctx, userService, marvelHeroes)
	if err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	dcIDs, err := seedUsers(ctx, userService, dcHeroes)
	if err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	// A few accounts with no recorded activity; these stay off the leaderboard.
	for i := 0; i < 5; i++ {
		name := generator.Username()
		_, err := userService.Create(ctx, &user.User{
			Username: name,
			Email:    fmt.Sprintf("%s@fittrack.dev", name),
		})
		if err != nil {
			log.Fatalf("failed to seed filler user: %v", err)
		}
	}

	slog.Info("Populating teams")
	if err := seedTeam(ctx, teamService, "Team Marvel", marvelIDs); err != nil {
		log.Fatalf("failed to seed team: %v", err)
	}
	if err := seedTeam(ctx, teamService, "Team DC", dcIDs); err != nil {
		log.Fatalf("failed to seed team: %v", err)
	}

	slog.Info("Populating activities")
	allIDs := append(append([]string{}, marvelIDs...), dcIDs...)
	for _, id := range allIDs {
		for i := 0; i < 1+r.Intn(5); i++ {
			a := &activity.Activity{
				UserID:       id,
				ActivityType: activityTypes[r.Intn(len(activityTypes))],
				Duration:     15 + r.Intn(90),
				Distance:     utils.ToPointer(float64(1+r.Intn(20)) + r.Float64()),
				Calories:     utils.ToPointer(100 + r.Intn(500)),
				Points:       10 * (1 + r.Intn(10)),
				Notes:        fmt.Sprintf("session with %s", generator.TeamName()),
			}
			if _, err := activityService.Create(ctx, a); err != nil {
				log.Fatalf("failed to seed activity: %v", err)
			}
		}
	}

	slog.Info("Populating workouts")
	if err := workoutService.ImportCatalog(ctx, workoutCatalog()); err != nil {
		log.Fatalf("failed to seed workouts: %v", err)
	}

	slog.Info("Snapshotting leaderboard")
	rankings, err := leaderboardService.Compute(ctx)
	if err != nil {
		log.Fatalf("failed to compute leaderboard: %v", err)
	}
	snap, err := leaderboardService.CreateSnapshot(ctx, &leaderboard.Snapshot{
		Period:       leaderboard.AllTime,
		PeriodStart:  time.Now().AddDate(0, -1, 0),
		UserRankings: rankings,
	})
	if err != nil {
		log.Fatalf("failed to snapshot leaderboard: %v", err)
	}

	utils.PrettyPrint(map[string]any{
		"users":      len(allIDs),
		"teams":      2,
		"rankings":   len(rankings),
		"snapshotId": snap.ID,
	})
}

func seedUsers(ctx context.Context, service user.Service, heroes []hero) ([]string, error) {
	ids := make([]string, 0, len(heroes))
	for _, h := range heroes {
		u, err := service.Create(ctx, &user.User{
			Username:     h.username,
			Email:        h.email,
			FirstName:    h.first,
			LastName:     h.last,
			FitnessLevel: h.level,
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func seedTeam(ctx context.Context, service team.Service, name string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return errors.New("no members to seed")
	}
	_, err := service.Create(ctx, &team.Team{
		Name:        name,
		Description: fmt.Sprintf("%s fitness crew", name),
		CaptainID:   memberIDs[0],
		MemberIDs:   memberIDs,
	})
	return err
}

func workoutCatalog() []workout.Workout {
	return []workout.Workout{
		{
			Title:           "Beginner Cardio",
			Description:     "A simple cardio session to build a base.",
			DifficultyLevel: workout.Beginner,
			TargetFitnessLevels: []string{
				string(user.Beginner),
			},
			Exercises: []workout.Exercise{
				{Name: "Jumping Jacks", Sets: 3, Duration: utils.ToPointer(60)},
				{Name: "Brisk Walk", Sets: 1, Duration: utils.ToPointer(600)},
			},
			EstimatedDuration: 20,
			EstimatedCalories: 150,
		},
		{
			Title:           "Interval Run",
			Description:     "Alternating sprint and recovery intervals.",
			DifficultyLevel: workout.Intermediate,
			TargetFitnessLevels: []string{
				string(user.Beginner),
				string(user.Intermediate),
			},
			Exercises: []workout.Exercise{
				{Name: "Sprint", Sets: 8, Duration: utils.ToPointer(30)},
				{Name: "Recovery Jog", Sets: 8, Duration: utils.ToPointer(90)},
			},
			EstimatedDuration: 30,
			EstimatedCalories: 320,
		},
		{
			Title:           "HIIT Session",
			Description:     "High intensity interval training.",
			DifficultyLevel: workout.Advanced,
			TargetFitnessLevels: []string{
				string(user.Intermediate),
				string(user.Advanced),
			},
			Exercises: []workout.Exercise{
				{Name: "Burpees", Sets: 4, Reps: utils.ToPointer(15)},
				{Name: "Mountain Climbers", Sets: 4, Duration: utils.ToPointer(45)},
				{Name: "Squat Jumps", Sets: 4, Reps: utils.ToPointer(12)},
			},
			EstimatedDuration: 30,
			EstimatedCalories: 350,
		},
	}
}

func deleteAll(ctx context.Context, db *firestore.Client, collection string) error {
	iter := db.Collection(collection).Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return err
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return err
		}
	}
	return nil
}
