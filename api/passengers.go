package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lribeiro91/aerogest/internal/service/passenger"
)

type PassengerHandler struct {
	service passenger.PassengerUseCase
}

type passengerRequest struct {
	Nome                string  `json:"nome" binding:"required,min=2"`
	DocumentoIdentidade *string `json:"documentoIdentidade" binding:"omitempty,min=5"`
	Email               *string `json:"email" binding:"omitempty,email"`
	PlaneID             *int64  `json:"planeId"`
}

func NewPassengerHandler(service passenger.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	created, err := h.service.Create(c.Request.Context(), passenger.PassengerInput{
		Nome:                req.Nome,
		DocumentoIdentidade: req.DocumentoIdentidade,
		Email:               req.Email,
		PlaneID:             req.PlaneID,
	})
	if err != nil {
		fail(c, err, "Erro ao criar passageiro")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Passageiro criado com sucesso", "data": created})
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengers, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar passageiros"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passageiros obtidos com sucesso", "data": passengers})
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar passageiro")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passageiro obtido com sucesso", "data": found})
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, passenger.PassengerInput{
		Nome:                req.Nome,
		DocumentoIdentidade: req.DocumentoIdentidade,
		Email:               req.Email,
		PlaneID:             req.PlaneID,
	})
	if err != nil {
		fail(c, err, "Erro ao atualizar passageiro")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passageiro atualizado com sucesso", "data": updated})
}

func (h *PassengerHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Erro ao deletar passageiro")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passageiro deletado com sucesso"})
}
