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

const collectionQuests = "quests"

type QuestRepository struct {
	col *mongo.Collection
}

func NewQuestRepository(db *mongo.Database) *QuestRepository {
	return &QuestRepository{col: db.Collection(collectionQuests)}
}

func (r *QuestRepository) Create(ctx context.Context, q *domain.Quest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, q); err != nil {
		return fmt.Errorf("insert quest: %w", err)
	}
	return nil
}

func (r *QuestRepository) FindByID(ctx context.Context, id string) (*domain.Quest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.Quest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("find quest: %w", err)
	}
	return &q, nil
}

func (r *QuestRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Quest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	defer cur.Close(ctx)

	var quests []*domain.Quest
	if err := cur.All(ctx, &quests); err != nil {
		return nil, fmt.Errorf("decode quests: %w", err)
	}
	return quests, nil
}

func (r *QuestRepository) Update(ctx context.Context, q *domain.Quest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": q.ID}, q)
	if err != nil {
		return fmt.Errorf("update quest: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

func (r *QuestRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete quest: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

func (r *QuestRepository) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete quests: %w", err)
	}
	return nil
}

func (r *QuestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
