package storage

import (
	"context"
	"errors"

	"github.com/denmor86/dispatch-board/internal/models"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

type OrdersStorage interface {
	GetOrder(ctx context.Context, id int64) (*models.OrderData, error)
	GetOrders(ctx context.Context) ([]models.OrderData, error)
	AddOrder(ctx context.Context, order models.OrderData) (int64, error)
	RestoreOrder(ctx context.Context, order models.OrderData) (int64, error)
	Remind(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64, settlement models.SettlementData) error
	Void(ctx context.Context, id int64, voider string, reason string) error
	MarkRead(ctx context.Context, id int64) error
	MarkCalled(ctx context.Context, id int64) error
	VerifyCoupon(ctx context.Context, id int64) error
}

type ReportsStorage interface {
	GetTable(ctx context.Context, name string) (*models.ReportTable, error)
	TableNames(ctx context.Context) ([]string, error)
	AddTable(ctx context.Context, table models.ReportTable) error
}

type Storage struct {
	Orders  OrdersStorage
	Reports ReportsStorage
}

// Создание хранилища
func NewStorage() Storage {
	return Storage{Orders: NewOrdersStorage(), Reports: NewReportsStorage()}
}

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnknownStatus     = errors.New("unknown status")

	ErrAlreadyExists = errors.New("already exists")
)
