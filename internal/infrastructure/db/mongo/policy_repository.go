package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

const collectionPolicies = "policies"

type PolicyRepository struct {
	col *mongo.Collection
}

func NewPolicyRepository(db *mongo.Database) *PolicyRepository {
	return &PolicyRepository{col: db.Collection(collectionPolicies)}
}

// Create inserts a new policy document, assigning its id.
func (r *PolicyRepository) Create(ctx context.Context, p *domain.Policy) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert policy: %w", err)
	}
	return nil
}

func (r *PolicyRepository) FindByID(ctx context.Context, id string) (*domain.Policy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Policy
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("find policy: %w", err)
	}
	return &p, nil
}

// List returns policies matching the filter, newest first.
func (r *PolicyRepository) List(ctx context.Context, filter ports.PolicyFilter) ([]domain.Policy, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != 0 {
		query["client_id"] = filter.ClientID
	}
	if filter.AgentID != 0 {
		query["agent_id"] = filter.AgentID
	}
	if filter.Kind != "" {
		query["kind"] = filter.Kind
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer cur.Close(ctx)

	var policies []domain.Policy
	if err := cur.All(ctx, &policies); err != nil {
		return nil, fmt.Errorf("decode policies: %w", err)
	}
	return policies, nil
}

// Update replaces the stored policy document.
func (r *PolicyRepository) Update(ctx context.Context, p *domain.Policy) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("update policy: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPolicyNotFound
	}
	return nil
}

func (r *PolicyRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete policy: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPolicyNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by the list filters.
func (r *PolicyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "agent_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
