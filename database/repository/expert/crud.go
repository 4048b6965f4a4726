// File: database/repository/expert/crud.go
package expertRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"consultly/models"
)

func (r *mongoExpertRepo) Create(ctx context.Context, expert *models.Expert) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if expert.ID == "" {
		expert.ID = uuid.New().String()
	}
	now := time.Now()
	expert.CreatedAt = now
	expert.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, expert)
	return err
}

func (r *mongoExpertRepo) GetByID(ctx context.Context, id string) (*models.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var expert models.Expert
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&expert); err != nil {
		return nil, err
	}
	return &expert, nil
}

func (r *mongoExpertRepo) GetByUserID(ctx context.Context, userID string) (*models.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var expert models.Expert
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&expert); err != nil {
		return nil, err
	}
	return &expert, nil
}

func (r *mongoExpertRepo) Update(ctx context.Context, expert *models.Expert) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	expert.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": expert.ID}, expert)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExpertRepo) UpdateAvailability(ctx context.Context, expertID string, rules []models.AvailabilityRule, timezone string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"availability": rules,
		"updatedAt":    time.Now(),
	}
	if timezone != "" {
		update["timezone"] = timezone
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": expertID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExpertRepo) UpdateStatus(ctx context.Context, expertID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": expertID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExpertRepo) UpdateRating(ctx context.Context, expertID string, rating float64, totalReviews int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": expertID},
		bson.M{"$set": bson.M{"rating": rating, "totalReviews": totalReviews, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExpertRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
