package ports

import (
	"context"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// RefDataInput is the payload for creating or updating a reference-data
// entry (vehicle category or disease).
type RefDataInput struct {
	Name        string
	Description string
}

// VehicleCategoryRepository persists vehicle categories.
type VehicleCategoryRepository interface {
	Create(ctx context.Context, cat *domain.VehicleCategory) error
	FindByID(ctx context.Context, id string) (*domain.VehicleCategory, error)
	List(ctx context.Context) ([]domain.VehicleCategory, error)
	Update(ctx context.Context, cat *domain.VehicleCategory) error
	Delete(ctx context.Context, id string) error
}

// DiseaseRepository persists diseases.
type DiseaseRepository interface {
	Create(ctx context.Context, d *domain.Disease) error
	FindByID(ctx context.Context, id string) (*domain.Disease, error)
	List(ctx context.Context) ([]domain.Disease, error)
	Update(ctx context.Context, d *domain.Disease) error
	Delete(ctx context.Context, id string) error
}

// CatalogService defines use-case operations for the reference data
// consumed by policy underwriting.
type CatalogService interface {
	CreateCategory(ctx context.Context, input RefDataInput) (*domain.VehicleCategory, error)
	GetCategory(ctx context.Context, id string) (*domain.VehicleCategory, error)
	ListCategories(ctx context.Context) ([]domain.VehicleCategory, error)
	UpdateCategory(ctx context.Context, id string, input RefDataInput) (*domain.VehicleCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateDisease(ctx context.Context, input RefDataInput) (*domain.Disease, error)
	GetDisease(ctx context.Context, id string) (*domain.Disease, error)
	ListDiseases(ctx context.Context) ([]domain.Disease, error)
	UpdateDisease(ctx context.Context, id string, input RefDataInput) (*domain.Disease, error)
	DeleteDisease(ctx context.Context, id string) error
}
