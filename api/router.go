package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Airports   *AirportHandler
	Planes     *PlaneHandler
	Flights    *FlightHandler
	Employees  *EmployeeHandler
	Passengers *PassengerHandler
	Tickets    *TicketHandler
	CashFlows  *CashFlowHandler
}

// NewRouter mounts every resource under /api.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	base := router.Group("/api")
	h.Airports.Register(base.Group("/airports"))
	h.Planes.Register(base.Group("/planes"))
	h.Flights.Register(base.Group("/flights"))
	h.Employees.Register(base.Group("/employees"))
	h.Passengers.Register(base.Group("/passengers"))
	h.Tickets.Register(base.Group("/tickets"))
	h.CashFlows.Register(base.Group("/cashflows"))

	return router
}
