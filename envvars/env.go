package envvars

import (
	"log"
	"os"
)

const (
	ProjectID     = "FIRESTORE_PROJECT_ID"
	Port          = "PORT"
	Environment   = "ENVIRONMENT"
	WorkoutBucket = "WORKOUT_BUCKET"
)

const (
	DevEnv        = "dev"
	ProductionEnv = "production"
)

type Env struct {
	ProjectID     string
	Port          string
	Environment   string
	WorkoutBucket string
}

func GetEvn() Env {
	projectID, ok := os.LookupEnv(ProjectID)
	if !ok {
		log.Fatalf("FIRESTORE_PROJECT_ID required")
	}
	port, ok := os.LookupEnv(Port)
	if !ok {
		port = "8080"
	}
	environment, ok := os.LookupEnv(Environment)
	if !ok {
		environment = DevEnv
	}
	// Workout catalog sync is skipped when no bucket is set.
	bucket := os.Getenv(WorkoutBucket)
	return Env{
		ProjectID:     projectID,
		Port:          port,
		Environment:   environment,
		WorkoutBucket: bucket,
	}
}

func IsProd(e Env) bool {
	return e.Environment == ProductionEnv
}

func IsDev(e Env) bool {
	return e.Environment == DevEnv
}
