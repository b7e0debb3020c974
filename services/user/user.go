package user

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
	// Get returns the user with the given document ID.
	Get(ctx context.Context, ID string) (*User, error)
	// GetAll returns all users. The leaderboard recomputes rankings from this set.
	GetAll(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, ID string, update Update) (*User, error)
	Delete(ctx context.Context, ID string) error
}

type userService struct {
	db *firestore.Client
}

var _ Service = (*userService)(nil)

const userCollection = "users"

func NewService(client *firestore.Client) Service {
	return &userService{
		db: client,
	}
}

var NotFound = errors.New("user not found")
var AlreadyExists = errors.New("username or email already in use")
var InvalidFitnessLevel = errors.New("fitness level must be beginner, intermediate, or advanced")

func (s *userService) Get(ctx context.Context, ID string) (*User, error) {
	user := User{}

	iter := s.db.Collection(userCollection).
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
		err = doc.DataTo(&user)
		if err != nil {
			return nil, err
		}
		return &user, nil
	}

	return nil, NotFound
}

func (s *userService) GetAll(ctx context.Context) ([]User, error) {
	docs, err := s.db.Collection(userCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	results, err := utils.GetAllToStructs[User](docs)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *userService) Create(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	taken, err := s.identityTaken(ctx, user.Username, user.Email, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if taken {
		return nil, AlreadyExists
	}

	if user.FitnessLevel == "" {
		user.FitnessLevel = Beginner
	}
	if !user.FitnessLevel.Valid() {
		return nil, InvalidFitnessLevel
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	ref := s.db.Collection(userCollection).NewDoc()
	user.ID = ref.ID

	_, err = ref.Set(ctx, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, ID string, update Update) (*User, error) {
	u, err := s.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	username := u.Username
	if update.Username != nil {
		username = *update.Username
	}
	email := u.Email
	if update.Email != nil {
		email = *update.Email
	}
	if username != u.Username || email != u.Email {
		taken, err := s.identityTaken(ctx, username, email, u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user uniqueness: %w", err)
		}
		if taken {
			return nil, AlreadyExists
		}
	}
	if update.FitnessLevel != nil && !FitnessLevel(*update.FitnessLevel).Valid() {
		return nil, InvalidFitnessLevel
	}

	fields := structs.Map(update)
	fields["updatedAt"] = time.Now()
	_, err = s.db.Collection(userCollection).Doc(u.ID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Get(ctx, ID)
}

func (s *userService) Delete(ctx context.Context, ID string) error {
	u, err := s.Get(ctx, ID)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(userCollection).Doc(u.ID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// identityTaken reports whether another user already holds the username or email.
// excludeID skips the user being updated so a no-op rename does not conflict.
func (s *userService) identityTaken(ctx context.Context, username, email, excludeID string) (bool, error) {
	q1 := firestore.PropertyFilter{
		Path:     "username",
		Operator: "==",
		Value:    username,
	}
	q2 := firestore.PropertyFilter{
		Path:     "email",
		Operator: "==",
		Value:    email,
	}
	orFilter := firestore.OrFilter{
		Filters: []firestore.EntityFilter{q1, q2},
	}

	iter := s.db.Collection(userCollection).WhereEntity(orFilter).Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return false, err
		}
		existing := User{}
		if err := doc.DataTo(&existing); err != nil {
			return false, err
		}
		if existing.ID == excludeID {
			continue
		}
		log.Warn().
			Str("username", username).
			Str("existing", existing.ID).
			Msg("username or email already in use")
		return true, nil
	}
	return false, nil
}
