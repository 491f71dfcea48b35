package pos

import "context"

// ======================================================
// Contrato com o POS externo (ordens/pagamentos)
// ======================================================

// Service é um item do catálogo do POS usado para calcular duração e total.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	DurationMin int    `json:"duration_min"` // 0 = não informado pelo POS
}

type Order struct {
	ID string `json:"id"`
}

// Gateway é a única dependência do core sobre o POS.
type Gateway interface {
	ListServices(ctx context.Context, bypassCache bool) ([]Service, error)

	CreateOrder(
		ctx context.Context,
		staffID uint,
		totalCents int64,
		note string,
	) (string, error)

	// AddLineItem: falhas aqui são não-fatais para o fluxo de agendamento.
	AddLineItem(ctx context.Context, orderID string, serviceID string) error

	// DeleteOrder é idempotente: apagar ordem inexistente conta como sucesso.
	DeleteOrder(ctx context.Context, orderID string) error
}
