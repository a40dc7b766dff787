package handlers

import (
	"github.com/albx0502/crm-api/internal/services"
	"github.com/albx0502/crm-api/internal/store"
)

// Handler carries the store and the services the route handlers need.
type Handler struct {
	Store        store.Store
	Bookings     *services.BookingService
	Appointments *services.AppointmentService
	Favorites    *services.FavoritesService
	Medications  *services.MedicationsService
}

func NewHandler(s store.Store) *Handler {
	return &Handler{
		Store:        s,
		Bookings:     services.NewBookingService(s),
		Appointments: services.NewAppointmentService(s),
		Favorites:    services.NewFavoritesService(s),
		Medications:  services.NewMedicationsService(s),
	}
}
