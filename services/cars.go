package services

import (
	"context"
	"errors"

	"car-marketplace-api/apperror"
	"car-marketplace-api/models"
	"car-marketplace-api/policy"
	"car-marketplace-api/repository"
)

type CarService struct {
	cars  repository.CarRepository
	users repository.UserRepository
}

func NewCarService(cars repository.CarRepository, users repository.UserRepository) *CarService {
	return &CarService{cars: cars, users: users}
}

// List re-queries the store on every call; each result is one finite page
func (s *CarService) List(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	if !filter.InRange() {
		return nil, apperror.Validation("page must be between 1 and %d", models.MaxPage)
	}
	return s.cars.List(ctx, filter)
}

// Create stores car owned by callerID, whatever owner the payload carried
func (s *CarService) Create(ctx context.Context, car models.Car, callerID uint) (*models.Car, error) {
	car.ID = 0
	car.OwnerID = callerID
	if err := s.cars.Create(ctx, &car); err != nil {
		return nil, err
	}
	return s.Get(ctx, car.ID)
}

func (s *CarService) Get(ctx context.Context, id uint) (*models.Car, error) {
	car, err := s.cars.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, carNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

// Update checks the ownership policy against the stored car and caller,
// applies the present fields of patch and returns the re-read car.
func (s *CarService) Update(ctx context.Context, id uint, patch models.CarPatch, callerID uint) (*models.Car, error) {
	car, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	caller, err := s.users.FindByID(ctx, callerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Unauthenticated("User no longer exists")
	}
	if err != nil {
		return nil, err
	}

	if err := policy.CanModifyCar(caller, car); err != nil {
		return nil, err
	}

	if err := s.cars.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *CarService) Delete(ctx context.Context, id uint) error {
	err := s.cars.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return carNotFound(id)
	}
	return err
}

func carNotFound(id uint) error {
	return apperror.NotFound("Car with id %d not found", id)
}
