package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

const collectionTeams = "teams"

type TeamRepository struct {
	col *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{col: db.Collection(collectionTeams)}
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if team.ID == "" {
		team.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, team); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var team domain.Team
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&team); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer cur.Close(ctx)

	var teams []domain.Team
	if err := cur.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}
