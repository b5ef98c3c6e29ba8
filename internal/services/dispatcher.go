package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/dispatch-board/internal/events"
	"github.com/denmor86/dispatch-board/internal/logger"
	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/storage"
)

// Виды действий над заказом
type ActionKind string

const (
	ActionRemind   ActionKind = "remind"
	ActionComplete ActionKind = "complete"
	ActionVoid     ActionKind = "void"
	ActionDetail   ActionKind = "detail"
	ActionContact  ActionKind = "contact"
	ActionVerify   ActionKind = "verify"
)

var (
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrActionCancelled   = errors.New("action cancelled")
)

// Prompter - подтверждающий диалог для разрушающих действий.
// Возврат nil-расчёта или ok=false означает отмену оператором.
type Prompter interface {
	CollectSettlement(ctx context.Context, order models.OrderData) (*models.SettlementData, error)
	CollectVoidReason(ctx context.Context, order models.OrderData) (string, bool, error)
}

// Dispatcher - единственная точка входа презентации для мутаций заказов.
// Проверяет заказ, при необходимости открывает подтверждение и передаёт
// мутацию хранилищу; отказы хранилища возвращаются вызывающему как есть.
type Dispatcher struct {
	Storage  storage.OrdersStorage
	Prompter Prompter
	Bus      *events.Bus
	Operator string
}

// Создание сервиса
func NewDispatcher(storage storage.OrdersStorage, prompter Prompter, bus *events.Bus, operator string) *Dispatcher {
	return &Dispatcher{Storage: storage, Prompter: prompter, Bus: bus, Operator: operator}
}

// Dispatch - выполняет действие над заказом и возвращает его свежую копию
func (d *Dispatcher) Dispatch(ctx context.Context, kind ActionKind, id int64) (*models.OrderData, error) {
	order, err := d.Storage.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ActionRemind:
		if err = d.Storage.Remind(ctx, id); err != nil {
			return nil, err
		}
		d.publish(events.KindReminded, id)

	case ActionComplete:
		settlement, err := d.Prompter.CollectSettlement(ctx, *order)
		if err != nil {
			return nil, err
		}
		if settlement == nil {
			return nil, ErrActionCancelled
		}
		if err = d.Storage.Complete(ctx, id, *settlement); err != nil {
			return nil, err
		}
		d.publish(events.KindCompleted, id)

	case ActionVoid:
		reason, ok, err := d.Prompter.CollectVoidReason(ctx, *order)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrActionCancelled
		}
		if err = d.Storage.Void(ctx, id, d.Operator, reason); err != nil {
			return nil, err
		}
		d.publish(events.KindVoided, id)

	case ActionDetail:
		// просмотр деталей помечает заказ прочитанным
		if err = d.Storage.MarkRead(ctx, id); err != nil {
			return nil, err
		}

	case ActionContact:
		if err = d.Storage.MarkCalled(ctx, id); err != nil {
			return nil, err
		}
		d.publish(events.KindContacted, id)

	case ActionVerify:
		if err = d.Storage.VerifyCoupon(ctx, id); err != nil {
			return nil, err
		}
		d.publish(events.KindCouponVerified, id)

	default:
		return nil, fmt.Errorf("action %q: %w", kind, ErrUnsupportedAction)
	}

	return d.Storage.GetOrder(ctx, id)
}

func (d *Dispatcher) publish(kind events.Kind, id int64) {
	if d.Bus == nil {
		return
	}
	event := events.New(kind, id)
	d.Bus.Publish(event)
	logger.Debug("event published", string(kind), event.ID)
}
