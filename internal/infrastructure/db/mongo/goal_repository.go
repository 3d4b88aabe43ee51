package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pokework/pokework-api/internal/core/domain"
)

const collectionGoals = "goals"

type GoalRepository struct {
	col *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{col: db.Collection(collectionGoals)}
}

func (r *GoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) FindByID(ctx context.Context, id string) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var g domain.Goal
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return &g, nil
}

func (r *GoalRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer cur.Close(ctx)

	var goals []*domain.Goal
	if err := cur.All(ctx, &goals); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}
	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, g *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

// IncrementValue relies on the server-side $inc so concurrent progress
// events from separate requests never clobber each other.
func (r *GoalRepository) IncrementValue(ctx context.Context, id string, delta float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"current_value": delta}},
	)
	if err != nil {
		return fmt.Errorf("increment goal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete goals: %w", err)
	}
	return nil
}

func (r *GoalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
