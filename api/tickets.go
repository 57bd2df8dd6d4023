package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lribeiro91/aerogest/internal/service/ticket"
	"github.com/shopspring/decimal"
)

type TicketHandler struct {
	service ticket.TicketUseCase
}

type ticketRequest struct {
	Assento      string  `json:"assento" binding:"required,min=2"`
	Preco        float64 `json:"preco" binding:"required,gt=0"`
	PassageiroID int64   `json:"passageiroId" binding:"required"`
	VooID        int64   `json:"vooId" binding:"required"`
}

func NewTicketHandler(service ticket.TicketUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.GET("/passenger/:id", h.listByPassenger)
	router.GET("/flight/:id", h.listByFlight)
}

func (r ticketRequest) input() ticket.TicketInput {
	return ticket.TicketInput{
		Assento:      r.Assento,
		Preco:        decimal.NewFromFloat(r.Preco),
		PassageiroID: r.PassageiroID,
		VooID:        r.VooID,
	}
}

func (h *TicketHandler) create(c *gin.Context) {
	var req ticketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	created, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		fail(c, err, "Erro ao criar ticket")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Ticket criado com sucesso", "data": created})
}

func (h *TicketHandler) list(c *gin.Context) {
	tickets, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tickets obtidos com sucesso", "data": tickets})
}

func (h *TicketHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar ticket")
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket obtido com sucesso", "data": found})
}

func (h *TicketHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ticketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, req.input())
	if err != nil {
		fail(c, err, "Erro ao atualizar ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket atualizado com sucesso", "data": updated})
}

func (h *TicketHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Erro ao deletar ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket deletado com sucesso"})
}

func (h *TicketHandler) listByPassenger(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tickets, err := h.service.ListByPassageiro(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar tickets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tickets obtidos com sucesso", "data": tickets})
}

func (h *TicketHandler) listByFlight(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tickets, err := h.service.ListByVoo(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar tickets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tickets obtidos com sucesso", "data": tickets})
}
