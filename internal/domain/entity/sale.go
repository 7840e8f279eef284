package entity

import "github.com/shopspring/decimal"

// Formas de pagamento aceitas pela loja.
const (
	PaymentCash      = "a_vista"
	PaymentFinanced  = "financiado"
	PaymentTradeIn   = "troca"
	PaymentConsigned = "consignado"
)

// SaleExpense despesa itemizada vinculada a um veículo vendido
// (documentação, funilaria, mecânica, comissão do vendedor, etc.).
type SaleExpense struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Sale registra a venda de um veículo. Entrada read-only do motor de
// analytics: o backend gerenciado é dono da persistência e entrega as
// datas como strings literais YYYY-MM-DD — datas não parseáveis são
// ignoradas pelo motor, nunca causam erro.
type Sale struct {
	ID            string          `json:"id"`
	Make          string          `json:"make"`      // marca (ex: "Fiat")
	Model         string          `json:"model"`     // modelo (ex: "Argo")
	SoldDate      string          `json:"sold_date"` // YYYY-MM-DD
	SoldPrice     decimal.Decimal `json:"sold_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Expenses      []SaleExpense   `json:"expenses"`
	PaymentMethod string          `json:"payment_method"`
}

// ExpensesTotal soma das despesas itemizadas do veículo.
func (s Sale) ExpensesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Invested capital imobilizado no veículo: preço de compra + despesas.
func (s Sale) Invested() decimal.Decimal {
	return s.PurchasePrice.Add(s.ExpensesTotal())
}
