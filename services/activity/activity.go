package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"fittrack/metrics"
	"fittrack/services/user"
	"fittrack/utils"
)

type Service interface {
	// Create persists a new activity. The referenced user must exist.
	Create(ctx context.Context, activity *Activity) (*Activity, error)
	Get(ctx context.Context, ID string) (*Activity, error)
	// GetAll returns all activities in reverse chronological order.
	GetAll(ctx context.Context) ([]Activity, error)
	// GetByUser returns the activities whose userId equals the given ID.
	GetByUser(ctx context.Context, userID string) ([]Activity, error)
	Delete(ctx context.Context, ID string) error
}

type activityService struct {
	db          *firestore.Client
	userService user.Service
}

var _ Service = (*activityService)(nil)

const activityCollection = "activities"

func NewService(client *firestore.Client, userService user.Service) Service {
	return &activityService{
		db:          client,
		userService: userService,
	}
}

var NotFound = errors.New("activity not found")
var InvalidDuration = errors.New("duration must be positive")

func (s *activityService) Create(ctx context.Context, activity *Activity) (*Activity, error) {
	if activity == nil {
		return nil, errors.New("activity is nil")
	}
	if activity.Duration <= 0 {
		return nil, InvalidDuration
	}
	// User ids arrive as caller-supplied strings; resolve them before accepting.
	if _, err := s.userService.Get(ctx, activity.UserID); err != nil {
		if errors.Is(err, user.NotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve user %s: %w", activity.UserID, err)
	}

	activity.CreatedAt = time.Now()

	ref := s.db.Collection(activityCollection).NewDoc()
	activity.ID = ref.ID

	_, err := ref.Set(ctx, activity)
	if err != nil {
		return nil, err
	}
	metrics.RecordActivityCreated(activity.ActivityType)
	return activity, nil
}

func (s *activityService) Get(ctx context.Context, ID string) (*Activity, error) {
	iter := s.db.Collection(activityCollection).
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
		a := Activity{}
		if err := doc.DataTo(&a); err != nil {
			return nil, err
		}
		return &a, nil
	}
	return nil, NotFound
}

func (s *activityService) GetAll(ctx context.Context) ([]Activity, error) {
	docs, err := s.db.Collection(activityCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Activity](docs)
}

func (s *activityService) GetByUser(ctx context.Context, userID string) ([]Activity, error) {
	docs, err := s.db.Collection(activityCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Activity](docs)
}

func (s *activityService) Delete(ctx context.Context, ID string) error {
	a, err := s.Get(ctx, ID)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(activityCollection).Doc(a.ID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}
