package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/service/employee"
)

type EmployeeHandler struct {
	service employee.EmployeeUseCase
}

type employeeRequest struct {
	Nome         string `json:"nome" binding:"required,min=2"`
	Matricula    string `json:"matricula" binding:"required,min=3"`
	Funcao       string `json:"funcao" binding:"required,oneof=piloto comissario tecnico atendente"`
	ContratadoEm string `json:"contratadoEm" binding:"omitempty"`
}

func (r employeeRequest) input(c *gin.Context) (employee.EmployeeInput, bool) {
	input := employee.EmployeeInput{
		Nome:      r.Nome,
		Matricula: r.Matricula,
		Funcao:    domain.EmployeeRole(r.Funcao),
	}
	if r.ContratadoEm != "" {
		contratadoEm, err := time.Parse(time.RFC3339, r.ContratadoEm)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"contratadoEm": "data e hora inválidas"}})
			return employee.EmployeeInput{}, false
		}
		input.ContratadoEm = contratadoEm
	}
	return input, true
}

func NewEmployeeHandler(service employee.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

func (h *EmployeeHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.GET("/role/:role", h.listByRole)
}

func (h *EmployeeHandler) create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	input, ok := req.input(c)
	if !ok {
		return
	}
	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, err, "Erro ao criar funcionário")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Funcionário criado com sucesso", "data": created})
}

func (h *EmployeeHandler) list(c *gin.Context) {
	employees, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar funcionários"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funcionários obtidos com sucesso", "data": employees})
}

func (h *EmployeeHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Erro ao buscar funcionário")
		return
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Funcionário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funcionário obtido com sucesso", "data": found})
}

func (h *EmployeeHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	input, ok := req.input(c)
	if !ok {
		return
	}
	// contratadoEm is re-stamped on every update unless the caller sends one.
	if input.ContratadoEm.IsZero() {
		input.ContratadoEm = time.Now()
	}
	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		fail(c, err, "Erro ao atualizar funcionário")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funcionário atualizado com sucesso", "data": updated})
}

func (h *EmployeeHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "Erro ao deletar funcionário")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funcionário deletado com sucesso"})
}

func (h *EmployeeHandler) listByRole(c *gin.Context) {
	role := domain.EmployeeRole(c.Param("role"))
	switch role {
	case domain.EmployeeRolePiloto, domain.EmployeeRoleComissario, domain.EmployeeRoleTecnico, domain.EmployeeRoleAtendente:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Função inválida"})
		return
	}
	employees, err := h.service.ListByRole(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar funcionários"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funcionários obtidos com sucesso", "data": employees})
}
