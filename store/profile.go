package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink/bloodlink-api/schema"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile not found")
	ErrProfileExists   = fmt.Errorf("profile already exists")
)

type ProfileStore interface {
	CreateProfile(profile *schema.Profile) error
	GetProfile(userID string) (*schema.Profile, error)
	GetProfiles(userIDs []string) (map[string]schema.Profile, error)
	UpdateProfile(userID string, fields schema.ProfileFields, now time.Time) (*schema.Profile, error)
}

// CreateProfile inserts the profile of a newly registered account
func (m *mongoDB) CreateProfile(profile *schema.Profile) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.collection(schema.ProfileCollection).InsertOne(ctx, profile); err != nil {
		if isDuplicateKey(err) {
			return ErrProfileExists
		}
		return err
	}

	return nil
}

// GetProfile finds the profile of an account
func (m *mongoDB) GetProfile(userID string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var profile schema.Profile
	if err := m.collection(schema.ProfileCollection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// GetProfiles loads the profiles of several accounts in one query, keyed by user id.
// Accounts without a profile are absent from the result.
func (m *mongoDB) GetProfiles(userIDs []string) (map[string]schema.Profile, error) {
	profiles := make(map[string]schema.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.ProfileCollection).Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}

	var results []schema.Profile
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	for _, p := range results {
		profiles[p.UserID] = p
	}

	return profiles, nil
}

// UpdateProfile applies the given fields to a profile, creating it if the
// account has none yet.
func (m *mongoDB) UpdateProfile(userID string, fields schema.ProfileFields, now time.Time) (*schema.Profile, error) {
	profile, err := m.GetProfile(userID)
	switch err {
	case nil:
	case ErrProfileNotFound:
		profile = &schema.Profile{
			UserID:      userID,
			IsEligible:  true,
			IsAvailable: true,
			CreatedAt:   now,
		}
	default:
		return nil, err
	}

	fields.Apply(profile)
	profile.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.collection(schema.ProfileCollection).ReplaceOne(ctx,
		bson.M{"user_id": userID}, profile, options.Replace().SetUpsert(true)); err != nil {
		return nil, err
	}

	return profile, nil
}
