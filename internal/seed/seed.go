package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/denmor86/dispatch-board/internal/logger"
	"github.com/denmor86/dispatch-board/internal/storage"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/goccy/go-json"
)

//go:embed default.json
var defaultDocument []byte

// Document - стартовый набор данных: заказы, табличные отчёты и
// объявления для бегущей строки.
type Document struct {
	Orders        []models.OrderData   `json:"orders"`
	Reports       []models.ReportTable `json:"reports"`
	Announcements []string             `json:"announcements"`
}

// Load - читает набор данных из файла. Пустой путь - встроенный набор.
func Load(path string) (*Document, error) {
	data := defaultDocument
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &doc, nil
}

// Apply - наполняет хранилище стартовым набором. Идентификаторы заказов
// назначает хранилище, значения из файла игнорируются.
func Apply(ctx context.Context, doc *Document, store storage.Storage) error {
	for _, order := range doc.Orders {
		if _, err := store.Orders.RestoreOrder(ctx, order); err != nil {
			return fmt.Errorf("restore order %q: %w", order.OrderNo, err)
		}
	}
	for _, table := range doc.Reports {
		if err := store.Reports.AddTable(ctx, table); err != nil {
			return fmt.Errorf("add report %q: %w", table.Name, err)
		}
	}
	logger.Info("seed applied", "orders", len(doc.Orders), "reports", len(doc.Reports))
	return nil
}
