package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/PamperedPaws01/groom-scheduler/internal/models"
	"github.com/PamperedPaws01/groom-scheduler/internal/pos"
)

// ======================================================
// RESULT (dois níveis: desfecho primário + falhas secundárias)
// ======================================================

// CompensationFailure é uma ação compensatória que falhou. Nunca vira o
// erro primário da operação: fica no canal lateral para observabilidade.
type CompensationFailure struct {
	Step string
	Err  error
}

type Result struct {
	Appointment   *models.Appointment
	Compensations []CompensationFailure
}

// Warnings achata o canal lateral para exposição na resposta HTTP.
func (r *Result) Warnings() []string {
	if len(r.Compensations) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Compensations))
	for _, cf := range r.Compensations {
		out = append(out, fmt.Sprintf("%s: %v", cf.Step, cf.Err))
	}
	return out
}

func (r *Result) compensationFailed(log *zap.Logger, step string, err error) {
	r.Compensations = append(r.Compensations, CompensationFailure{Step: step, Err: err})
	log.Warn("compensation failed",
		zap.String("step", step),
		zap.Error(err),
	)
}

// ======================================================
// SERVIÇOS SELECIONADOS (duração + total via catálogo do POS)
// ======================================================

type selectedServices struct {
	Names       []string
	IDs         []string // só os encontrados no catálogo
	DurationMin int
	TotalCents  int64
}

// resolveServices recalcula duração e total a partir do catálogo, nunca
// confiando em valores vindos do cliente. Serviço fora do catálogo conta
// a duração padrão e preço zero.
func resolveServices(
	ctx context.Context,
	gateway pos.Gateway,
	names []string,
) (*selectedServices, error) {

	catalog, err := gateway.ListServices(ctx, false)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]pos.Service, len(catalog))
	for _, s := range catalog {
		byName[strings.ToLower(s.Name)] = s
	}

	out := &selectedServices{Names: names}
	for _, name := range names {
		s, found := byName[strings.ToLower(name)]
		if !found {
			out.DurationMin += pos.DefaultServiceDurationMin
			continue
		}
		out.IDs = append(out.IDs, s.ID)
		out.DurationMin += pos.ServiceDuration(s)
		out.TotalCents += s.PriceCents
	}

	return out, nil
}

// orderNote monta a nota legível que acompanha a ordem no POS.
func orderNote(
	customer *models.Customer,
	pet *models.Pet,
	date string,
	startTime string,
	services []string,
) string {
	return fmt.Sprintf(
		"Cliente: %s | Pet: %s | Data: %s %s | Serviços: %s | Tel: %s",
		customer.Name,
		pet.Name,
		date,
		startTime,
		strings.Join(services, ", "),
		customer.Phone,
	)
}

// addLineItems anexa os itens à ordem. Falha aqui é não-fatal: a ordem já
// existe com nota e total; apenas registramos.
func addLineItems(
	ctx context.Context,
	gateway pos.Gateway,
	log *zap.Logger,
	orderID string,
	serviceIDs []string,
) {
	for _, id := range serviceIDs {
		if err := gateway.AddLineItem(ctx, orderID, id); err != nil {
			log.Warn("pos line item not attached",
				zap.String("order_id", orderID),
				zap.String("service_id", id),
				zap.Error(err),
			)
		}
	}
}

// clock injetável (filtro de "hoje" e regras de antecedência)
type nowFunc func() time.Time
