package entity

import "github.com/shopspring/decimal"

// Categorias usuais de despesa operacional da loja.
const (
	ExpenseRent      = "aluguel"
	ExpensePayroll   = "folha"
	ExpenseUtilities = "contas"
	ExpenseMarketing = "marketing"
	ExpenseOther     = "outros"
)

// OperatingExpense despesa operacional da loja (OPEX): não vinculada a um
// veículo específico. Mesma convenção de data literal da Sale.
type OperatingExpense struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}
