package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type catalogService struct {
	categories ports.VehicleCategoryRepository
	diseases   ports.DiseaseRepository
	log        zerolog.Logger
}

// NewCatalogService returns a CatalogService over the two reference-data
// repositories.
func NewCatalogService(categories ports.VehicleCategoryRepository, diseases ports.DiseaseRepository, log zerolog.Logger) ports.CatalogService {
	return &catalogService{categories: categories, diseases: diseases, log: log}
}

func (s *catalogService) CreateCategory(ctx context.Context, input ports.RefDataInput) (*domain.VehicleCategory, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	cat := &domain.VehicleCategory{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	s.log.Info().Str("name", cat.Name).Msg("vehicle category created")
	return cat, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id string) (*domain.VehicleCategory, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.VehicleCategory, error) {
	return s.categories.List(ctx)
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, input ports.RefDataInput) (*domain.VehicleCategory, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cat.Name = input.Name
	cat.Description = input.Description
	cat.UpdatedAt = time.Now().UTC()
	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *catalogService) CreateDisease(ctx context.Context, input ports.RefDataInput) (*domain.Disease, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	d := &domain.Disease{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.diseases.Create(ctx, d); err != nil {
		return nil, err
	}
	s.log.Info().Str("name", d.Name).Msg("disease created")
	return d, nil
}

func (s *catalogService) GetDisease(ctx context.Context, id string) (*domain.Disease, error) {
	return s.diseases.FindByID(ctx, id)
}

func (s *catalogService) ListDiseases(ctx context.Context) ([]domain.Disease, error) {
	return s.diseases.List(ctx)
}

func (s *catalogService) UpdateDisease(ctx context.Context, id string, input ports.RefDataInput) (*domain.Disease, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	d, err := s.diseases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Name = input.Name
	d.Description = input.Description
	d.UpdatedAt = time.Now().UTC()
	if err := s.diseases.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *catalogService) DeleteDisease(ctx context.Context, id string) error {
	return s.diseases.Delete(ctx, id)
}
