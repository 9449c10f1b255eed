package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

// CarHandler exposes the public car catalog endpoints.
type CarHandler struct {
	cars service.CarService
}

func NewCarHandler(cars service.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.ListCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCars(w, cars)
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid car id")
		return
	}
	car, err := h.cars.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) ListCarsByMake(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.ListCarsByMake(r.Context(), mux.Vars(r)["make"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeCars(w, cars)
}

func (h *CarHandler) ListCarsByYear(w http.ResponseWriter, r *http.Request) {
	year, err := parseInt32(mux.Vars(r)["year"])
	if err != nil {
		writeBadRequest(w, "invalid year")
		return
	}
	cars, err := h.cars.ListCarsByYear(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCars(w, cars)
}

func (h *CarHandler) ListCarsByClass(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.ListCarsByClass(r.Context(), mux.Vars(r)["class"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeCars(w, cars)
}

func (h *CarHandler) ListCarsByFuelType(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.ListCarsByFuelType(r.Context(), mux.Vars(r)["fuelType"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeCars(w, cars)
}

func (h *CarHandler) ListCarsByDrive(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.ListCarsByDrive(r.Context(), mux.Vars(r)["drive"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeCars(w, cars)
}

func writeCars(w http.ResponseWriter, cars []domain.Car) {
	if cars == nil {
		cars = []domain.Car{}
	}
	writeJSON(w, http.StatusOK, cars)
}
