package handlers

import (
	"github.com/jmoiron/sqlx"

	"trailhead/internal/config"
	"trailhead/internal/repos"
	"trailhead/internal/services"
)

type Deps struct {
	DestinationHandler *DestinationHandler
	BookingHandler     *BookingHandler
	AdminHandler       *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	destRepo := repos.NewDestinationRepo(db)
	bookingRepo := repos.NewBookingRepo(db)

	catalogSvc := services.NewCatalogService(destRepo)
	bookingSvc := services.NewBookingService(bookingRepo, destRepo)

	expose := !cfg.Production()
	return &Deps{
		DestinationHandler: &DestinationHandler{Catalog: catalogSvc, Expose: expose},
		BookingHandler:     &BookingHandler{Bookings: bookingSvc, Expose: expose},
		AdminHandler:       &AdminHandler{Catalog: catalogSvc, Expose: expose},
	}
}
