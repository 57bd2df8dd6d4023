package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lribeiro91/aerogest/internal/service/plane"
	"github.com/shopspring/decimal"
)

type PlaneHandler struct {
	service plane.PlaneUseCase
}

type planeRequest struct {
	Modelo        string  `json:"modelo" binding:"required,min=3"`
	AnoFabricacao int     `json:"anoFabricacao" binding:"required,min=2"`
	Capacidade    int     `json:"capacidade" binding:"required,min=2"`
	ValorCompra   float64 `json:"valorCompra" binding:"required,min=3"`
}

func NewPlaneHandler(service plane.PlaneUseCase) *PlaneHandler {
	return &PlaneHandler{service: service}
}

func (h *PlaneHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *PlaneHandler) create(c *gin.Context) {
	var req planeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), plane.PlaneInput{
		Modelo:        req.Modelo,
		AnoFabricacao: req.AnoFabricacao,
		Capacidade:    req.Capacidade,
		ValorCompra:   decimal.NewFromFloat(req.ValorCompra),
	})
	if err != nil {
		fail(c, err, "Erro ao criar avião")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Avião criado com sucesso", "data": created})
}

func (h *PlaneHandler) list(c *gin.Context) {
	planes, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar aviões"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aviões obtidos com sucesso", "data": planes})
}

// get receives nil for an unknown id; the 404 is decided here, not in the
// service.
func (h *PlaneHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar avião"})
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avião não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avião obtido com sucesso", "data": found})
}

func (h *PlaneHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req planeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, plane.PlaneInput{
		Modelo:        req.Modelo,
		AnoFabricacao: req.AnoFabricacao,
		Capacidade:    req.Capacidade,
		ValorCompra:   decimal.NewFromFloat(req.ValorCompra),
	})
	if err != nil {
		fail(c, err, "Erro ao atualizar avião")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avião atualizado com sucesso", "data": updated})
}

func (h *PlaneHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Erro ao deletar avião")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avião deletado com sucesso"})
}
