package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"fittrack/utils"
)

type Service interface {
	Get(ctx context.Context, ID string) (*Workout, error)
	// GetAll returns all workouts, optionally filtered by difficulty level.
	// An empty difficulty returns everything.
	GetAll(ctx context.Context, difficulty string) ([]Workout, error)
	// Recommended returns the workouts targeting the given fitness level.
	Recommended(ctx context.Context, fitnessLevel string) ([]Workout, error)
	Create(ctx context.Context, workout *Workout) (*Workout, error)
	Update(ctx context.Context, ID string, update Update) (*Workout, error)
	Delete(ctx context.Context, ID string) error
	// ImportCatalog upserts workouts into the collection, keyed by title.
	// Used by the startup catalog sync and the seeder.
	ImportCatalog(ctx context.Context, catalog []Workout) error
}

type workoutService struct {
	db *firestore.Client
}

var _ Service = (*workoutService)(nil)

const workoutCollection = "workouts"

func NewService(client *firestore.Client) Service {
	return &workoutService{
		db: client,
	}
}

var NotFound = errors.New("workout not found")
var InvalidDifficulty = errors.New("invalid difficulty level")

func (s *workoutService) Get(ctx context.Context, ID string) (*Workout, error) {
	iter := s.db.Collection(workoutCollection).
		Where("id", "==", ID).
		Limit(1).
		Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		w := Workout{}
		if err := doc.DataTo(&w); err != nil {
			return nil, err
		}
		return &w, nil
	}
	return nil, NotFound
}

func (s *workoutService) GetAll(ctx context.Context, difficulty string) ([]Workout, error) {
	query := s.db.Collection(workoutCollection).Query
	if difficulty != "" {
		query = query.Where("difficultyLevel", "==", difficulty)
	}
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Workout](docs)
}

func (s *workoutService) Recommended(ctx context.Context, fitnessLevel string) ([]Workout, error) {
	docs, err := s.db.Collection(workoutCollection).
		Where("targetFitnessLevels", "array-contains", fitnessLevel).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Workout](docs)
}

func (s *workoutService) Create(ctx context.Context, workout *Workout) (*Workout, error) {
	if workout == nil {
		return nil, errors.New("workout is nil")
	}
	if !workout.DifficultyLevel.Valid() {
		return nil, InvalidDifficulty
	}

	now := time.Now()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	ref := s.db.Collection(workoutCollection).NewDoc()
	workout.ID = ref.ID

	_, err := ref.Set(ctx, workout)
	if err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) Update(ctx context.Context, ID string, update Update) (*Workout, error) {
	w, err := s.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	if update.DifficultyLevel != nil && !DifficultyLevel(*update.DifficultyLevel).Valid() {
		return nil, InvalidDifficulty
	}

	fields := structs.Map(update)
	fields["updatedAt"] = time.Now()
	_, err = s.db.Collection(workoutCollection).Doc(w.ID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}
	return s.Get(ctx, ID)
}

func (s *workoutService) Delete(ctx context.Context, ID string) error {
	w, err := s.Get(ctx, ID)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(workoutCollection).Doc(w.ID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil
}

func (s *workoutService) ImportCatalog(ctx context.Context, catalog []Workout) error {
	for _, w := range catalog {
		existing, err := s.getByTitle(ctx, w.Title)
		if err != nil {
			return fmt.Errorf("failed to look up workout %q: %w", w.Title, err)
		}
		now := time.Now()
		w.UpdatedAt = now
		if existing != nil {
			w.ID = existing.ID
			w.CreatedAt = existing.CreatedAt
			_, err = s.db.Collection(workoutCollection).Doc(existing.ID).Set(ctx, w)
		} else {
			ref := s.db.Collection(workoutCollection).NewDoc()
			w.ID = ref.ID
			w.CreatedAt = now
			_, err = ref.Set(ctx, w)
		}
		if err != nil {
			return fmt.Errorf("failed to upsert workout %q: %w", w.Title, err)
		}
	}
	log.Info().Int("count", len(catalog)).Msg("workout catalog imported")
	return nil
}

func (s *workoutService) getByTitle(ctx context.Context, title string) (*Workout, error) {
	docs, err := s.db.Collection(workoutCollection).
		Where("title", "==", title).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	w := &Workout{}
	if err := docs[0].DataTo(w); err != nil {
		return nil, err
	}
	return w, nil
}
