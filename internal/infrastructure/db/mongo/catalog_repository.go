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

const (
	collectionVehicleCategories = "vehicle_categories"
	collectionDiseases          = "diseases"
)

// VehicleCategoryRepository persists vehicle categories.
type VehicleCategoryRepository struct {
	col *mongo.Collection
}

func NewVehicleCategoryRepository(db *mongo.Database) *VehicleCategoryRepository {
	return &VehicleCategoryRepository{col: db.Collection(collectionVehicleCategories)}
}

func (r *VehicleCategoryRepository) Create(ctx context.Context, cat *domain.VehicleCategory) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if cat.ID == "" {
		cat.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, cat); err != nil {
		return fmt.Errorf("insert vehicle category: %w", err)
	}
	return nil
}

func (r *VehicleCategoryRepository) FindByID(ctx context.Context, id string) (*domain.VehicleCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cat domain.VehicleCategory
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find vehicle category: %w", err)
	}
	return &cat, nil
}

func (r *VehicleCategoryRepository) List(ctx context.Context) ([]domain.VehicleCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list vehicle categories: %w", err)
	}
	defer cur.Close(ctx)

	var cats []domain.VehicleCategory
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode vehicle categories: %w", err)
	}
	return cats, nil
}

func (r *VehicleCategoryRepository) Update(ctx context.Context, cat *domain.VehicleCategory) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": cat.ID}, cat)
	if err != nil {
		return fmt.Errorf("update vehicle category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *VehicleCategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete vehicle category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// DiseaseRepository persists diseases.
type DiseaseRepository struct {
	col *mongo.Collection
}

func NewDiseaseRepository(db *mongo.Database) *DiseaseRepository {
	return &DiseaseRepository{col: db.Collection(collectionDiseases)}
}

func (r *DiseaseRepository) Create(ctx context.Context, d *domain.Disease) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if d.ID == "" {
		d.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("insert disease: %w", err)
	}
	return nil
}

func (r *DiseaseRepository) FindByID(ctx context.Context, id string) (*domain.Disease, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Disease
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDiseaseNotFound
		}
		return nil, fmt.Errorf("find disease: %w", err)
	}
	return &d, nil
}

func (r *DiseaseRepository) List(ctx context.Context) ([]domain.Disease, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list diseases: %w", err)
	}
	defer cur.Close(ctx)

	var diseases []domain.Disease
	if err := cur.All(ctx, &diseases); err != nil {
		return nil, fmt.Errorf("decode diseases: %w", err)
	}
	return diseases, nil
}

func (r *DiseaseRepository) Update(ctx context.Context, d *domain.Disease) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return fmt.Errorf("update disease: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDiseaseNotFound
	}
	return nil
}

func (r *DiseaseRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete disease: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDiseaseNotFound
	}
	return nil
}
