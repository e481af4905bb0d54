package repository

import (
	"context"

	"car-marketplace-api/models"

	"gorm.io/gorm"
)

type CarRepository interface {
	List(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	Create(ctx context.Context, car *models.Car) error
	FindByID(ctx context.Context, id uint) (*models.Car, error)
	Update(ctx context.Context, id uint, patch models.CarPatch) error
	Delete(ctx context.Context, id uint) error
}

type GormCarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

// List returns one page of cars with MinPrice < price < MaxPrice, ordered by id
func (r *GormCarRepository) List(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	if filter.Page > models.MaxPage {
		return []models.Car{}, nil
	}
	query := r.db.WithContext(ctx).
		Where("price > ? AND price < ?", filter.MinPrice, filter.MaxPrice)
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}

	cars := []models.Car{}
	err := query.Order("id asc").
		Offset(filter.Offset()).
		Limit(models.PageSize).
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *GormCarRepository) Create(ctx context.Context, car *models.Car) error {
	return translate(r.db.WithContext(ctx).Create(car).Error)
}

func (r *GormCarRepository) FindByID(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, translate(err)
	}
	return &car, nil
}

// Update writes only the fields present in patch. An empty patch is a no-op.
func (r *GormCarRepository) Update(ctx context.Context, id uint, patch models.CarPatch) error {
	changes := patch.Changes()
	if len(changes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("id = ?", id).
		Updates(changes).Error
}

// Delete removes the car, or returns ErrNotFound when nothing matched
func (r *GormCarRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Car{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
