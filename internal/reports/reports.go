package reports

import (
	"context"
	"strings"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/services"
	"github.com/denmor86/dispatch-board/internal/storage"
)

// Имена вспомогательных вкладок
const (
	TabPayments         = "payments"
	TabErrors           = "errors"
	TabDirectDispatch   = "direct-dispatch"
	TabPerformance      = "performance"
	TabChanges          = "changes"
	TabLongTerm         = "long-term"
	TabTransfers        = "transfers"
	TabDispatchLog      = "dispatch-log"
	TabRecordingPrices  = "recording-prices"
	TabQuotations       = "quotations"
	TabPendingEntry     = "pending-entry"
	TabOrderLibrary     = "order-library"
	TabWechatCollection = "wechat-collection"
)

// Registry - вкладки табличных отчётов. Строки поставляются извне,
// движок их только фильтрует и нарезает на страницы.
type Registry struct {
	Storage storage.ReportsStorage
}

// Создание реестра
func NewRegistry(storage storage.ReportsStorage) *Registry {
	return &Registry{Storage: storage}
}

// Tabs - имена вкладок в порядке добавления
func (r *Registry) Tabs(ctx context.Context) ([]string, error) {
	return r.Storage.TableNames(ctx)
}

// View - страница отчёта после фильтра по ключевому слову.
// Пагинатор получает новую длину и сам поджимает текущую страницу.
func (r *Registry) View(ctx context.Context, name string, keyword string, paginator *services.Paginator) (*models.ReportTable, error) {
	table, err := r.Storage.GetTable(ctx, name)
	if err != nil {
		return nil, err
	}

	if keyword != "" {
		filtered := make([][]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			if rowMatches(row, keyword) {
				filtered = append(filtered, row)
			}
		}
		table.Rows = filtered
	}

	paginator.SetTotal(len(table.Rows))
	lo, hi := paginator.Bounds()
	table.Rows = table.Rows[lo:hi]
	return table, nil
}

// rowMatches - регистронезависимый поиск подстроки по всем ячейкам
func rowMatches(row []string, keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), keyword) {
			return true
		}
	}
	return false
}
