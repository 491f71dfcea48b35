package httperr

import (
	"fmt"
	"strings"
	"time"

	"github.com/PamperedPaws01/groom-scheduler/internal/models"
)

// ======================================================
// Taxonomia de erros do core de agendamento
// ======================================================

// ValidationError: entrada inválida/ausente. Nenhum efeito colateral
// aconteceu; seguro reenviar após correção.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// ConflictError: double-booking detectado. Carrega o agendamento em
// conflito; só prossegue com override explícito do usuário.
type ConflictError struct {
	Conflicting *models.Appointment
}

func (e ConflictError) Error() string {
	if e.Conflicting == nil {
		return "time conflict"
	}
	return fmt.Sprintf(
		"time conflict with appointment %s at %s %s",
		e.Conflicting.ID, e.Conflicting.Date, e.Conflicting.StartTime,
	)
}

// ExternalServiceError: POS inacessível ou rejeitou após esgotar retries.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e ExternalServiceError) Error() string {
	return fmt.Sprintf("pos %s: %v", e.Op, e.Err)
}

func (e ExternalServiceError) Unwrap() error { return e.Err }

// PersistenceError: falha do store local.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

// RateLimitedError: transitório, tratado internamente com backoff.
// Só chega ao chamador depois de virar ExternalServiceError.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}
