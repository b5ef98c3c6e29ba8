package reports

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/services"
	"github.com/denmor86/dispatch-board/internal/storage"
	"github.com/google/go-cmp/cmp"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reportStorage := storage.NewReportsStorage()

	rows := make([][]string, 0, 25)
	for i := 0; i < 25; i++ {
		rows = append(rows, []string{fmt.Sprintf("PAY-%04d", i), "CS A", fmt.Sprintf("%d.00", 100+i)})
	}
	err := reportStorage.AddTable(context.Background(), models.ReportTable{
		Name:    TabPayments,
		Title:   "Order payments",
		Headers: []string{"order no", "dispatcher", "amount"},
		Rows:    rows,
	})
	if err != nil {
		t.Fatalf("add table: %v", err)
	}
	return NewRegistry(reportStorage)
}

func TestRegistry_ViewPaging(t *testing.T) {
	registry := newTestRegistry(t)
	paginator := services.NewPaginator(10)
	paginator.SetTotal(25)
	paginator.SetPage(3)

	table, err := registry.View(context.Background(), TabPayments, "", paginator)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	// последняя страница короткая
	if len(table.Rows) != 5 {
		t.Errorf("Expected 5 rows on page 3, got %d", len(table.Rows))
	}
	if table.Rows[0][0] != "PAY-0020" {
		t.Errorf("Expected first row PAY-0020, got %s", table.Rows[0][0])
	}
}

func TestRegistry_ViewKeyword(t *testing.T) {
	registry := newTestRegistry(t)
	paginator := services.NewPaginator(10)

	// поиск регистронезависимый и по любой ячейке
	table, err := registry.View(context.Background(), TabPayments, "pay-0003", paginator)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	expected := [][]string{{"PAY-0003", "CS A", "103.00"}}
	if diff := cmp.Diff(expected, table.Rows); diff != "" {
		t.Errorf("expected rows mismatch:\n%s", diff)
	}
	if paginator.Total() != 1 {
		t.Errorf("Expected paginator total 1, got %d", paginator.Total())
	}
}

func TestRegistry_UnknownTab(t *testing.T) {
	registry := newTestRegistry(t)
	paginator := services.NewPaginator(10)

	_, err := registry.View(context.Background(), "nonexistent", "", paginator)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got '%v'", err)
	}
}
