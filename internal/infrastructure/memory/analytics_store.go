// Package memory adapta as portas de leitura do motor de analytics para
// coleções em memória, opcionalmente carregadas de um snapshot JSON
// exportado do backend gerenciado. Serve a API em modo dev e os testes;
// persistência de verdade é responsabilidade de outro sistema.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/autorevenda/gestor-api/internal/domain/entity"
)

// Store guarda vendas e despesas por loja. Seguro para leitura concorrente
// após o seed.
type Store struct {
	mu       sync.RWMutex
	sales    map[string][]entity.Sale
	expenses map[string][]entity.OperatingExpense
}

// NewStore cria um store vazio.
func NewStore() *Store {
	return &Store{
		sales:    make(map[string][]entity.Sale),
		expenses: make(map[string][]entity.OperatingExpense),
	}
}

// SeedSales registra vendas para a loja. IDs vazios ganham um UUID.
func (s *Store) SeedSales(storeID string, sales []entity.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range sales {
		if sales[i].ID == "" {
			sales[i].ID = uuid.NewString()
		}
	}
	s.sales[storeID] = append(s.sales[storeID], sales...)
}

// SeedExpenses registra despesas operacionais para a loja.
func (s *Store) SeedExpenses(storeID string, expenses []entity.OperatingExpense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range expenses {
		if expenses[i].ID == "" {
			expenses[i].ID = uuid.NewString()
		}
	}
	s.expenses[storeID] = append(s.expenses[storeID], expenses...)
}

// ListByStore implementa repository.SaleRepository. Devolve uma cópia:
// o chamador nunca enxerga o slice interno.
func (s *Store) ListByStore(ctx context.Context, storeID string) ([]entity.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Sale, len(s.sales[storeID]))
	copy(out, s.sales[storeID])
	return out, nil
}

// ExpenseView projeção do Store como OperatingExpenseRepository (as duas
// portas têm o mesmo nome de método com retornos distintos).
type ExpenseView struct{ store *Store }

// Expenses devolve a projeção de despesas do store.
func (s *Store) Expenses() *ExpenseView { return &ExpenseView{store: s} }

// ListByStore implementa repository.OperatingExpenseRepository.
func (v *ExpenseView) ListByStore(ctx context.Context, storeID string) ([]entity.OperatingExpense, error) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	out := make([]entity.OperatingExpense, len(v.store.expenses[storeID]))
	copy(out, v.store.expenses[storeID])
	return out, nil
}

// snapshot formato do arquivo JSON exportado do backend gerenciado.
type snapshot struct {
	StoreID  string                    `json:"store_id"`
	Sales    []entity.Sale             `json:"sales"`
	Expenses []entity.OperatingExpense `json:"expenses"`
}

// LoadSnapshot semeia o store a partir de um export JSON.
func (s *Store) LoadSnapshot(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ler snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("decodificar snapshot: %w", err)
	}
	if snap.StoreID == "" {
		snap.StoreID = "default"
	}
	s.SeedSales(snap.StoreID, snap.Sales)
	s.SeedExpenses(snap.StoreID, snap.Expenses)
	return nil
}
