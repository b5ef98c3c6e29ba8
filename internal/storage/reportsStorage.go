package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/denmor86/dispatch-board/internal/models"
)

// ReportMemory - хранилище табличных отчётов в памяти.
// Отчёты только читаются, порядок вкладок сохраняется.
type ReportMemory struct {
	mu     sync.RWMutex
	tables map[string]models.ReportTable
	names  []string
}

// Создание хранилища отчётов
func NewReportsStorage() *ReportMemory {
	return &ReportMemory{tables: make(map[string]models.ReportTable)}
}

func (s *ReportMemory) GetTable(_ context.Context, name string) (*models.ReportTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("report %q: %w", name, ErrNotFound)
	}
	copy := table
	copy.Rows = append([][]string(nil), table.Rows...)
	return &copy, nil
}

// TableNames - имена вкладок в порядке добавления
func (s *ReportMemory) TableNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.names...), nil
}

func (s *ReportMemory) AddTable(_ context.Context, table models.ReportTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[table.Name]; ok {
		return fmt.Errorf("report %q: %w", table.Name, ErrAlreadyExists)
	}
	s.tables[table.Name] = table
	s.names = append(s.names, table.Name)
	return nil
}
