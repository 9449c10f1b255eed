package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/storage"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type carService struct {
	carRepo repository.CarRepository
	images  storage.ImageStore
}

func NewCarService(carRepo repository.CarRepository, images storage.ImageStore) CarService {
	return &carService{
		carRepo: carRepo,
		images:  images,
	}
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) ListCarsByMake(ctx context.Context, make string) ([]domain.Car, error) {
	return s.carRepo.ListByMake(ctx, make)
}

func (s *carService) ListCarsByYear(ctx context.Context, year int32) ([]domain.Car, error) {
	return s.carRepo.ListByYear(ctx, year)
}

func (s *carService) ListCarsByClass(ctx context.Context, class string) ([]domain.Car, error) {
	return s.carRepo.ListByClass(ctx, class)
}

func (s *carService) ListCarsByFuelType(ctx context.Context, fuelType string) ([]domain.Car, error) {
	return s.carRepo.ListByFuelType(ctx, fuelType)
}

func (s *carService) ListCarsByDrive(ctx context.Context, drive string) ([]domain.Car, error) {
	return s.carRepo.ListByDrive(ctx, drive)
}

// UploadImage stores a catalog photo for the car and records its path.
// Admin only; the previous photo is removed once the new one is in place.
func (s *carService) UploadImage(ctx context.Context, actor domain.Actor, carID int32, contentType string, body io.Reader) (*domain.Car, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domain.ErrUnsupportedImage
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("cars/%d-%s%s", carID, uuid.NewString(), ext)
	if err := s.images.Save(key, body); err != nil {
		return nil, err
	}
	if err := s.carRepo.SetImagePath(ctx, carID, key); err != nil {
		return nil, err
	}

	if car.ImgPath != "" && car.ImgPath != key {
		if err := s.images.Delete(car.ImgPath); err != nil {
			logger.Warn("failed to remove replaced car image", "car_id", carID, "key", car.ImgPath, "error", err)
		}
	}

	car.ImgPath = key
	return car, nil
}

// OpenImage streams the stored photo for the car along with its content type.
func (s *carService) OpenImage(ctx context.Context, carID int32) (io.ReadCloser, string, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, "", err
	}
	if car.ImgPath == "" {
		return nil, "", fmt.Errorf("car %d has no image: %w", carID, domain.ErrNotFound)
	}

	file, err := s.images.Open(car.ImgPath)
	if err != nil {
		return nil, "", fmt.Errorf("car %d image: %w", carID, domain.ErrNotFound)
	}

	contentType := "application/octet-stream"
	for ct, ext := range imageExtensions {
		if path.Ext(car.ImgPath) == ext {
			contentType = ct
			break
		}
	}
	return file, contentType, nil
}
