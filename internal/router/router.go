package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCar(c *ginext.Context)
	GetCar(c *ginext.Context)
	ListCars(c *ginext.Context)
	ListAvailableCars(c *ginext.Context)
	ScheduleMaintenance(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CompleteReservation(c *ginext.Context)
	CreateCustomer(c *ginext.Context)
	ListCustomers(c *ginext.Context)
	GetCustomerReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Cars
		api.POST("/cars", h.CreateCar)
		api.GET("/cars", h.ListCars)
		api.GET("/cars/available", h.ListAvailableCars)
		api.GET("/cars/:id", h.GetCar)
		api.POST("/cars/:id/maintenance", h.ScheduleMaintenance)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id", h.UpdateReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/complete", h.CompleteReservation)

		// Customers
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:id/reservations", h.GetCustomerReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
