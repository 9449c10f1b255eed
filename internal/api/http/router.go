package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Bookings *BookingHandler
	Cars     *CarHandler
	Users    *UserHandler
	Admin    *AdminHandler
	Auth     *AuthMiddleware
	DB       *sql.DB
}

// NewRouter builds the REST surface. Availability reads are deliberately
// unauthenticated so the search UI can gray out booked cars before login.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	// Health
	r.HandleFunc("/health", healthHandler(h.DB)).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", h.Users.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Users.Login).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/users/{id:[0-9]+}", h.Auth.RequireAuth(h.Users.GetProfile)).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", h.Auth.RequireAuth(h.Users.UpdateProfile)).Methods(http.MethodPut)

	// Car catalog (public)
	r.HandleFunc("/cars", h.Cars.ListCars).Methods(http.MethodGet)
	r.HandleFunc("/cars/make/{make}", h.Cars.ListCarsByMake).Methods(http.MethodGet)
	r.HandleFunc("/cars/year/{year:[0-9]+}", h.Cars.ListCarsByYear).Methods(http.MethodGet)
	r.HandleFunc("/cars/class/{class}", h.Cars.ListCarsByClass).Methods(http.MethodGet)
	r.HandleFunc("/cars/fuel/{fuelType}", h.Cars.ListCarsByFuelType).Methods(http.MethodGet)
	r.HandleFunc("/cars/drive/{drive}", h.Cars.ListCarsByDrive).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id:[0-9]+}", h.Cars.GetCar).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id:[0-9]+}/image", h.Cars.GetCarImage).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id:[0-9]+}/image", h.Auth.RequireAuth(h.Cars.UploadCarImage)).Methods(http.MethodPut)

	// Bookings
	r.HandleFunc("/bookings", h.Auth.RequireAuth(h.Bookings.CreateBooking)).Methods(http.MethodPost)
	r.HandleFunc("/bookings/availability", h.Bookings.CheckAvailability).Methods(http.MethodGet)
	r.HandleFunc("/bookings/booked-car-ids", h.Bookings.ListBookedCarIDs).Methods(http.MethodGet)
	r.HandleFunc("/bookings", h.Auth.RequireAuth(h.Bookings.ListAllBookings)).Methods(http.MethodGet)
	r.HandleFunc("/bookings/user/{userId:[0-9]+}", h.Auth.RequireAuth(h.Bookings.ListUserBookings)).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id:[0-9]+}", h.Auth.RequireAuth(h.Bookings.GetBooking)).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id:[0-9]+}/cancel", h.Auth.RequireAuth(h.Bookings.CancelBooking)).Methods(http.MethodPatch)
	r.HandleFunc("/bookings/{id:[0-9]+}/status", h.Auth.RequireAuth(h.Bookings.UpdateBookingStatus)).Methods(http.MethodPatch)

	// Admin
	r.HandleFunc("/admin/users", h.Auth.RequireAuth(h.Admin.ListUsers)).Methods(http.MethodGet)
	r.HandleFunc("/admin/users/{id:[0-9]+}", h.Auth.RequireAuth(h.Admin.SoftDeleteUser)).Methods(http.MethodDelete)

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
