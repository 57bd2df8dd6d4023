package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lribeiro91/aerogest/internal/domain"
)

// bindError answers a failed request binding with a 400 and an errors field,
// keyed per offending field when the validator can tell us.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return "valor abaixo do mínimo (" + fe.Param() + ")"
	case "len":
		return "tamanho deve ser exatamente " + fe.Param()
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "email":
		return "email inválido"
	case "alpha", "uppercase":
		return "deve conter apenas letras maiúsculas"
	default:
		return "valor inválido"
	}
}

// fail maps service failures onto HTTP statuses: NotFound -> 404,
// InvalidReference and Conflict -> 400, anything else -> 500 with the
// endpoint's fallback message.
func fail(c *gin.Context, err error, fallback string) {
	switch {
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsInvalidReference(err), domain.IsConflict(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
