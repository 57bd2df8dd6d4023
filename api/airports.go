package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lribeiro91/aerogest/internal/service/airport"
)

type AirportHandler struct {
	service airport.AirportUseCase
}

type airportRequest struct {
	Nome       string `json:"nome" binding:"required,min=2"`
	Cidade     string `json:"cidade" binding:"required,min=2"`
	Estado     string `json:"estado" binding:"required,min=2"`
	CodigoIATA string `json:"codigoIATA" binding:"required,len=3,alpha,uppercase"`
}

func NewAirportHandler(service airport.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.GET("/:id/details", h.details)
	router.POST("/:id/planes/:planeId", h.addPlane)
	router.DELETE("/:id/planes/:planeId", h.removePlane)
}

// create checks the IATA code itself before calling the service; the service
// does not re-check on create.
func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	existing, err := h.service.GetByCodigoIATA(c.Request.Context(), req.CodigoIATA)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar aeroporto"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aeroporto já existe com esse código IATA"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), airport.CreateAirportInput{
		Nome:       req.Nome,
		Cidade:     req.Cidade,
		Estado:     req.Estado,
		CodigoIATA: req.CodigoIATA,
		CriadoEm:   time.Now(),
	})
	if err != nil {
		fail(c, err, "Erro ao criar aeroporto")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Aeroporto criado com sucesso", "data": created})
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar aeroportos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aeroportos obtidos com sucesso", "data": airports})
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar aeroporto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aeroporto obtido com sucesso", "data": found})
}

func (h *AirportHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, airport.CreateAirportInput{
		Nome:       req.Nome,
		Cidade:     req.Cidade,
		Estado:     req.Estado,
		CodigoIATA: req.CodigoIATA,
		CriadoEm:   time.Now(),
	})
	if err != nil {
		fail(c, err, "Erro ao atualizar aeroporto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aeroporto atualizado com sucesso", "data": updated})
}

func (h *AirportHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Erro ao deletar aeroporto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aeroporto deletado com sucesso"})
}

func (h *AirportHandler) details(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	details, err := h.service.GetDetails(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar aeroporto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Aeroporto obtido com sucesso", "data": details})
}

func (h *AirportHandler) addPlane(c *gin.Context) {
	airportID, ok := parseID(c, "id")
	if !ok {
		return
	}
	planeID, ok := parseID(c, "planeId")
	if !ok {
		return
	}
	if err := h.service.AddPlane(c.Request.Context(), airportID, planeID); err != nil {
		fail(c, err, "Erro ao vincular avião")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Avião vinculado ao aeroporto"})
}

func (h *AirportHandler) removePlane(c *gin.Context) {
	airportID, ok := parseID(c, "id")
	if !ok {
		return
	}
	planeID, ok := parseID(c, "planeId")
	if !ok {
		return
	}
	if err := h.service.RemovePlane(c.Request.Context(), airportID, planeID); err != nil {
		fail(c, err, "Erro ao desvincular avião")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Avião desvinculado do aeroporto"})
}
