package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/service/flight"
)

type FlightHandler struct {
	service flight.FlightUseCase
}

type flightRequest struct {
	Origem          int64  `json:"origem" binding:"required"`
	Destino         int64  `json:"destino" binding:"required"`
	DataHoraPartida string `json:"dataHoraPartida" binding:"required"`
	DataHoraChegada string `json:"dataHoraChegada" binding:"required"`
	Status          string `json:"status" binding:"omitempty,oneof=programado em_andamento concluido cancelado"`
	Plane           int64  `json:"plane" binding:"required"`
}

func NewFlightHandler(service flight.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.GET("/airport/:id", h.listByAirport)
	router.GET("/plane/:id", h.listByPlane)
}

func (h *FlightHandler) input(c *gin.Context) (flight.FlightInput, bool) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return flight.FlightInput{}, false
	}

	partida, err := time.Parse(time.RFC3339, req.DataHoraPartida)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"dataHoraPartida": "data e hora inválidas"}})
		return flight.FlightInput{}, false
	}
	chegada, err := time.Parse(time.RFC3339, req.DataHoraChegada)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"dataHoraChegada": "data e hora inválidas"}})
		return flight.FlightInput{}, false
	}

	return flight.FlightInput{
		OrigemID:        req.Origem,
		DestinoID:       req.Destino,
		DataHoraPartida: partida,
		DataHoraChegada: chegada,
		Status:          domain.FlightStatus(req.Status),
		PlaneID:         req.Plane,
	}, true
}

func (h *FlightHandler) create(c *gin.Context) {
	input, ok := h.input(c)
	if !ok {
		return
	}
	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err, "Erro ao criar voo")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Voo criado com sucesso", "data": created})
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar voos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voos obtidos com sucesso", "data": flights})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar voo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voo obtido com sucesso", "data": found})
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	input, ok := h.input(c)
	if !ok {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err, "Erro ao atualizar voo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voo atualizado com sucesso", "data": updated})
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Erro ao deletar voo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voo excluído com sucesso"})
}

func (h *FlightHandler) listByAirport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	flights, err := h.service.ListByAirport(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar voos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voos obtidos com sucesso", "data": flights})
}

func (h *FlightHandler) listByPlane(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	flights, err := h.service.ListByPlane(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar voos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voos obtidos com sucesso", "data": flights})
}
