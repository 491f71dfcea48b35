package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PamperedPaws01/groom-scheduler/internal/models"
)

type HTTPError struct {
	Code        string              `json:"error_code"`
	Message     string              `json:"message"`
	Fields      []string            `json:"fields,omitempty"`
	Conflicting *models.Appointment `json:"conflicting,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError mapeia a taxonomia do core para a resposta HTTP.
func FromError(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_error",
			Message: "Dados inválidos.",
			Fields:  ve.Fields,
		})
		return
	}

	var ce ConflictError
	if errors.As(err, &ce) {
		c.JSON(http.StatusConflict, HTTPError{
			Code:        "time_conflict",
			Message:     "Horário em conflito com outro agendamento.",
			Conflicting: ce.Conflicting,
		})
		return
	}

	var ee ExternalServiceError
	if errors.As(err, &ee) {
		Write(c, http.StatusBadGateway, "pos_unavailable", "Sistema de pedidos indisponível.")
		return
	}

	var pe PersistenceError
	if errors.As(err, &pe) {
		Internal(c, "persistence_error", "Erro ao gravar agendamento.")
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "appointment_not_found", "staff_not_found":
			NotFound(c, be.Code, "Registro não encontrado.")
		default:
			BadRequest(c, be.Code, "Operação inválida.")
		}
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
