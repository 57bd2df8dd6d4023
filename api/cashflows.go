package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/service/cashflow"
	"github.com/shopspring/decimal"
)

type CashFlowHandler struct {
	service cashflow.CashFlowUseCase
}

type cashFlowRequest struct {
	Description string  `json:"description" binding:"required,min=3"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PlaneID     int64   `json:"planeId" binding:"required"`
	AirportID   int64   `json:"airportId" binding:"required"`
}

func NewCashFlowHandler(service cashflow.CashFlowUseCase) *CashFlowHandler {
	return &CashFlowHandler{service: service}
}

func (h *CashFlowHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.history)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.DELETE("/", h.deleteAll)
	router.GET("/type/:type", h.listByType)
	router.GET("/description/:description", h.listByDescription)
	router.GET("/date/:date", h.listByDate)
}

func (r cashFlowRequest) input() cashflow.CashFlowInput {
	return cashflow.CashFlowInput{
		Description: r.Description,
		Type:        domain.CashFlowType(r.Type),
		Amount:      decimal.NewFromFloat(r.Amount),
		PlaneID:     r.PlaneID,
		AirportID:   r.AirportID,
	}
}

func (h *CashFlowHandler) create(c *gin.Context) {
	var req cashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	created, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		fail(c, err, "Erro ao registrar movimentação")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Movimentação registrada com sucesso", "data": created})
}

func (h *CashFlowHandler) history(c *gin.Context) {
	entries, err := h.service.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar movimentações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentações obtidas com sucesso", "data": entries})
}

func (h *CashFlowHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar movimentação")
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movimentação não encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentação obtida com sucesso", "data": found})
}

func (h *CashFlowHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req cashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, req.input())
	if err != nil {
		fail(c, err, "Erro ao atualizar movimentação")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentação atualizada com sucesso", "data": updated})
}

func (h *CashFlowHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Erro ao deletar movimentação")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentação deletada com sucesso"})
}

func (h *CashFlowHandler) deleteAll(c *gin.Context) {
	removed, err := h.service.DeleteAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao limpar movimentações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentações removidas com sucesso", "data": removed})
}

func (h *CashFlowHandler) listByType(c *gin.Context) {
	t := domain.CashFlowType(c.Param("type"))
	if t != domain.CashFlowTypeIncome && t != domain.CashFlowTypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de movimentação inválido"})
		return
	}
	entries, err := h.service.ListByType(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar movimentações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentações obtidas com sucesso", "data": entries})
}

func (h *CashFlowHandler) listByDescription(c *gin.Context) {
	entries, err := h.service.ListByDescription(c.Request.Context(), c.Param("description"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar movimentações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentações obtidas com sucesso", "data": entries})
}

func (h *CashFlowHandler) listByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida, use o formato YYYY-MM-DD"})
		return
	}
	entries, err := h.service.ListByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar movimentações"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimentações obtidas com sucesso", "data": entries})
}
