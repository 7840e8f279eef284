package repository

import (
	"context"

	"github.com/autorevenda/gestor-api/internal/domain/entity"
)

// SaleRepository porta read-only para as vendas de uma loja. O fetch real
// (backend gerenciado, cache) pertence a outro componente; o motor de
// analytics só consome a lista completa.
type SaleRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]entity.Sale, error)
}

// OperatingExpenseRepository porta read-only para as despesas operacionais
// de uma loja.
type OperatingExpenseRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]entity.OperatingExpense, error)
}
