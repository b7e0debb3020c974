package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"fittrack/api"
	"fittrack/metrics"
	"fittrack/services/activity"
	"fittrack/services/user"
)

type Service interface {
	// Compute recomputes the ranking from all users and activities. It runs
	// on every call; nothing is cached or persisted.
	Compute(ctx context.Context) ([]api.RankingEntry, error)

	CreateSnapshot(ctx context.Context, snapshot *Snapshot) (*Snapshot, error)
	GetSnapshot(ctx context.Context, ID string) (*Snapshot, error)
	DeleteSnapshot(ctx context.Context, ID string) error
}

type service struct {
	db              *firestore.Client
	userService     user.Service
	activityService activity.Service
}

var _ Service = (*service)(nil)

const collection = "leaderboard"

func NewService(db *firestore.Client, userService user.Service, activityService activity.Service) Service {
	return &service{
		db:              db,
		userService:     userService,
		activityService: activityService,
	}
}

var NotFound = errors.New("leaderboard snapshot not found")
var InvalidPeriod = errors.New("period must be weekly, monthly, or all-time")

func (s *service) Compute(ctx context.Context) ([]api.RankingEntry, error) {
	users, err := s.userService.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	activities, err := s.activityService.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	entries := Rank(users, activities)
	metrics.RecordLeaderboardComputed(len(entries))
	return entries, nil
}

func (s *service) CreateSnapshot(ctx context.Context, snapshot *Snapshot) (*Snapshot, error) {
	if snapshot == nil {
		return nil, errors.New("snapshot is nil")
	}
	if !snapshot.Period.Valid() {
		return nil, InvalidPeriod
	}

	snapshot.LastUpdated = time.Now()

	ref := s.db.Collection(collection).NewDoc()
	snapshot.ID = ref.ID

	_, err := ref.Set(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *service) GetSnapshot(ctx context.Context, ID string) (*Snapshot, error) {
	iter := s.db.Collection(collection).
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
		snap := Snapshot{}
		if err := doc.DataTo(&snap); err != nil {
			return nil, err
		}
		return &snap, nil
	}
	return nil, NotFound
}

func (s *service) DeleteSnapshot(ctx context.Context, ID string) error {
	snap, err := s.GetSnapshot(ctx, ID)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(collection).Doc(snap.ID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete leaderboard snapshot: %w", err)
	}
	return nil
}
