package Models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeviceToken maps a user to one of their FCM registration tokens.
type DeviceToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    string             `bson:"user_id" json:"userId"`
	Value     string             `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type NotificationRequest struct {
	Tokens []string `json:"tokens"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
}

type DeviceTokenStore interface {
	Save(ctx context.Context, token *DeviceToken) error
	FindByUser(ctx context.Context, userID string) ([]string, error)
}

type mongoDeviceTokenStore struct {
	col *mongo.Collection
}

// Save upserts on the token value so re-registering a device moves the
// token to its current user.
func (s *mongoDeviceTokenStore) Save(ctx context.Context, token *DeviceToken) error {
	update := bson.M{
		"$set":         bson.M{"user_id": token.UserID},
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.col.UpdateOne(ctx, bson.M{"value": token.Value}, update, opts)
	return err
}

func (s *mongoDeviceTokenStore) FindByUser(ctx context.Context, userID string) ([]string, error) {
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tokens []DeviceToken
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		values = append(values, token.Value)
	}
	return values, nil
}
