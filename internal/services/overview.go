package services

import (
	"context"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/storage"
	"github.com/shopspring/decimal"
)

// OverviewData - сводные показатели для строки обзора над таблицей
type OverviewData struct {
	Total            int
	Pending          int
	Completed        int
	Void             int
	Returned         int
	Errors           int
	Reminded         int
	TotalAmount      decimal.Decimal
	Revenue          decimal.Decimal
	CompletionIncome decimal.Decimal
}

// Overview - пересчёт сводных показателей по снимку хранилища
type Overview struct {
	Storage storage.OrdersStorage
}

// Создание сервиса
func NewOverview(storage storage.OrdersStorage) *Overview {
	return &Overview{Storage: storage}
}

func (o *Overview) Snapshot(ctx context.Context) (*OverviewData, error) {
	orders, err := o.Storage.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	data := &OverviewData{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPendingDispatch:
			data.Pending++
		case models.OrderStatusCompleted:
			data.Completed++
		case models.OrderStatusVoid:
			data.Void++
		case models.OrderStatusReturned:
			data.Returned++
		case models.OrderStatusError:
			data.Errors++
		}
		if order.IsReminded {
			data.Reminded++
		}
		data.TotalAmount = data.TotalAmount.Add(order.TotalAmount)
		data.Revenue = data.Revenue.Add(order.Revenue)
		data.CompletionIncome = data.CompletionIncome.Add(order.CompletionIncome)
	}
	return data, nil
}
