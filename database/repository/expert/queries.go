// File: database/repository/expert/queries.go
package expertRepo

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"consultly/models"
)

func (r *mongoExpertRepo) List(ctx context.Context, filter models.ExpertFilter) ([]models.Expert, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"status": bson.M{"$ne": "offline"}}
	if filter.Category != "" {
		query["services.category"] = filter.Category
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"title": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"expertise": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["services.price"] = price
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	sort := bson.D{{Key: "rating", Value: -1}}
	switch filter.SortBy {
	case "price":
		sort = bson.D{{Key: "services.0.price", Value: 1}}
	case "experience":
		sort = bson.D{{Key: "totalReviews", Value: -1}}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var experts []models.Expert
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, 0, err
	}
	return experts, total, nil
}

// ListCategories returns the distinct service categories across all experts.
func (r *mongoExpertRepo) ListCategories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "services.category", bson.M{"services.category": bson.M{"$ne": ""}})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *mongoExpertRepo) ListFeatured(ctx context.Context) ([]models.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(8)
	cursor, err := r.coll.Find(ctx, bson.M{"featured": true, "verified": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var experts []models.Expert
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, err
	}
	return experts, nil
}
