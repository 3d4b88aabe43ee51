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

const collectionPokemon = "pokemon"

type PokemonRepository struct {
	col *mongo.Collection
}

func NewPokemonRepository(db *mongo.Database) *PokemonRepository {
	return &PokemonRepository{col: db.Collection(collectionPokemon)}
}

func (r *PokemonRepository) Create(ctx context.Context, p *domain.Pokemon) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert pokemon: %w", err)
	}
	return nil
}

func (r *PokemonRepository) FindByUserID(ctx context.Context, userID string) (*domain.Pokemon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Pokemon
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPokemonNotFound
		}
		return nil, fmt.Errorf("find pokemon: %w", err)
	}
	return &p, nil
}

func (r *PokemonRepository) Update(ctx context.Context, p *domain.Pokemon) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update pokemon: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPokemonNotFound
	}
	return nil
}

func (r *PokemonRepository) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete pokemon: %w", err)
	}
	return nil
}

// EnsureIndexes enforces the one-to-one user relationship.
func (r *PokemonRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
