package team

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/fatih/structs"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"fittrack/services/user"
	"fittrack/set"
	"fittrack/utils"
)

type Service interface {
	Get(ctx context.Context, ID string) (*Team, error)
	GetAll(ctx context.Context) ([]Team, error)
	// GetByMember returns the teams whose member list contains the given user ID.
	GetByMember(ctx context.Context, userID string) ([]Team, error)
	Create(ctx context.Context, team *Team) (*Team, error)
	Update(ctx context.Context, ID string, update Update) (*Team, error)
	Delete(ctx context.Context, ID string) error

	// AddMember adds a user to the team member list. Adding an existing
	// member is a no-op; the updated team is returned either way.
	AddMember(ctx context.Context, teamID string, userID string) (*Team, error)
	// RemoveMember removes a user from the team member list. Removing an
	// absent member is a no-op; the updated team is returned either way.
	RemoveMember(ctx context.Context, teamID string, userID string) (*Team, error)
}

type teamService struct {
	db          *firestore.Client
	userService user.Service
}

var _ Service = (*teamService)(nil)

const teamCollection = "teams"

func NewService(client *firestore.Client, userService user.Service) Service {
	return &teamService{
		db:          client,
		userService: userService,
	}
}

var NotFound = errors.New("team not found")
var MissingUserID = errors.New("user_id is required")

func (s *teamService) Get(ctx context.Context, ID string) (*Team, error) {
	iter := s.db.Collection(teamCollection).
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
		t := Team{}
		if err := doc.DataTo(&t); err != nil {
			return nil, err
		}
		return &t, nil
	}
	return nil, NotFound
}

func (s *teamService) GetAll(ctx context.Context) ([]Team, error) {
	docs, err := s.db.Collection(teamCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Team](docs)
}

func (s *teamService) GetByMember(ctx context.Context, userID string) ([]Team, error) {
	docs, err := s.db.Collection(teamCollection).
		Where("memberIds", "array-contains", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Team](docs)
}

func (s *teamService) Create(ctx context.Context, team *Team) (*Team, error) {
	if team == nil {
		return nil, errors.New("team is nil")
	}
	if _, err := s.userService.Get(ctx, team.CaptainID); err != nil {
		if errors.Is(err, user.NotFound) {
			return nil, fmt.Errorf("captain: %w", err)
		}
		return nil, fmt.Errorf("failed to resolve captain %s: %w", team.CaptainID, err)
	}
	// The captain belongs to the team they lead.
	team.MemberIDs = AddMemberID(team.MemberIDs, team.CaptainID)

	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	ref := s.db.Collection(teamCollection).NewDoc()
	team.ID = ref.ID

	_, err := ref.Set(ctx, team)
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) Update(ctx context.Context, ID string, update Update) (*Team, error) {
	t, err := s.Get(ctx, ID)
	if err != nil {
		return nil, err
	}
	if update.CaptainID != nil {
		if _, err := s.userService.Get(ctx, *update.CaptainID); err != nil {
			if errors.Is(err, user.NotFound) {
				return nil, fmt.Errorf("captain: %w", err)
			}
			return nil, fmt.Errorf("failed to resolve captain %s: %w", *update.CaptainID, err)
		}
	}

	fields := structs.Map(update)
	fields["updatedAt"] = time.Now()
	_, err = s.db.Collection(teamCollection).Doc(t.ID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.Get(ctx, ID)
}

func (s *teamService) Delete(ctx context.Context, ID string) error {
	t, err := s.Get(ctx, ID)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(teamCollection).Doc(t.ID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *teamService) AddMember(ctx context.Context, teamID string, userID string) (*Team, error) {
	if userID == "" {
		return nil, MissingUserID
	}
	t, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userService.Get(ctx, userID); err != nil {
		if errors.Is(err, user.NotFound) {
			return nil, fmt.Errorf("member: %w", err)
		}
		return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	if set.FromSlice(t.MemberIDs).Contains(userID) {
		return t, nil
	}

	now := time.Now()
	// ArrayUnion keeps concurrent membership edits from clobbering each other.
	_, err = s.db.Collection(teamCollection).Doc(t.ID).Update(ctx, []firestore.Update{
		{Path: "memberIds", Value: firestore.ArrayUnion(userID)},
		{Path: "updatedAt", Value: now},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	log.Info().Str("teamId", t.ID).Str("userId", userID).Msg("member added")
	t.MemberIDs = AddMemberID(t.MemberIDs, userID)
	t.UpdatedAt = now
	return t, nil
}

func (s *teamService) RemoveMember(ctx context.Context, teamID string, userID string) (*Team, error) {
	if userID == "" {
		return nil, MissingUserID
	}
	t, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !set.FromSlice(t.MemberIDs).Contains(userID) {
		return t, nil
	}

	now := time.Now()
	_, err = s.db.Collection(teamCollection).Doc(t.ID).Update(ctx, []firestore.Update{
		{Path: "memberIds", Value: firestore.ArrayRemove(userID)},
		{Path: "updatedAt", Value: now},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}
	log.Info().Str("teamId", t.ID).Str("userId", userID).Msg("member removed")
	t.MemberIDs = RemoveMemberID(t.MemberIDs, userID)
	t.UpdatedAt = now
	return t, nil
}
