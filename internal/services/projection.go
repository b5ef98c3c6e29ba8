package services

import (
	"context"
	"sort"
	"strings"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/storage"
)

// Projection - проекция таблицы заказов: стабильная сортировка плюс фильтр.
// Каждый вызов - чистая функция от текущего снимка хранилища и критериев.
type Projection struct {
	Storage storage.OrdersStorage
}

// Создание сервиса
func NewProjection(storage storage.OrdersStorage) *Projection {
	return &Projection{Storage: storage}
}

// Project - возвращает отсортированный и отфильтрованный срез заказов.
// Порядок: "ожидает назначения" раньше остальных, внутри - без напоминания
// раньше напомненных, при равенстве сохраняется порядок добавления.
func (p *Projection) Project(ctx context.Context, criteria models.FilterCriteria) ([]models.OrderData, error) {
	orders, err := p.Storage.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		aPending := a.Status == models.OrderStatusPendingDispatch
		bPending := b.Status == models.OrderStatusPendingDispatch
		if aPending != bPending {
			return aPending
		}
		if a.IsReminded != b.IsReminded {
			return !a.IsReminded
		}
		return false
	})

	if criteria.Empty() {
		return orders, nil
	}

	filtered := make([]models.OrderData, 0, len(orders))
	for _, order := range orders {
		if matches(order, criteria) {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// matches - проверка заказа по критериям панели поиска (логическое "И")
func matches(order models.OrderData, criteria models.FilterCriteria) bool {
	if criteria.Keyword != "" {
		keyword := strings.ToLower(criteria.Keyword)
		if !strings.Contains(strings.ToLower(order.OrderNo), keyword) &&
			!strings.Contains(order.Mobile, criteria.Keyword) &&
			!strings.Contains(strings.ToLower(order.CustomerName), keyword) {
			return false
		}
	}
	if len(criteria.Statuses) > 0 && !containsStatus(criteria.Statuses, order.Status) {
		return false
	}
	if criteria.From != nil && order.RecordTime.Before(*criteria.From) {
		return false
	}
	if criteria.To != nil && order.RecordTime.After(*criteria.To) {
		return false
	}
	if criteria.Dispatcher != "" &&
		!strings.Contains(strings.ToLower(order.DispatcherName), strings.ToLower(criteria.Dispatcher)) {
		return false
	}
	if criteria.Source != "" && order.Source != criteria.Source {
		return false
	}
	return true
}

func containsStatus(statuses []string, status string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
