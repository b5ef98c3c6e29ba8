package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/shopspring/decimal"
)

// Допустимые переходы статусов. Статусы RETURNED и ERROR назначаются
// внешними системами и входящих переходов здесь не имеют.
var transitions = map[string][]string{
	models.OrderStatusPendingDispatch: {models.OrderStatusCompleted, models.OrderStatusVoid},
	models.OrderStatusCompleted:       {models.OrderStatusVoid},
	models.OrderStatusVoid:            {},
	models.OrderStatusReturned:        {},
	models.OrderStatusError:           {},
}

func canTransit(from string, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// OrderMemory - хранилище заказов в памяти. Порядок добавления сохраняется
// и служит опорой стабильной сортировки проекции.
type OrderMemory struct {
	mu     sync.RWMutex
	orders map[int64]*models.OrderData
	seq    []int64
	nextID int64
}

// Создание хранилища заказов
func NewOrdersStorage() *OrderMemory {
	return &OrderMemory{orders: make(map[int64]*models.OrderData)}
}

func (s *OrderMemory) GetOrder(_ context.Context, id int64) (*models.OrderData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	copy := *order
	return &copy, nil
}

// GetOrders - срез заказов в порядке добавления
func (s *OrderMemory) GetOrders(_ context.Context) ([]models.OrderData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.OrderData, 0, len(s.seq))
	for _, id := range s.seq {
		orders = append(orders, *s.orders[id])
	}
	return orders, nil
}

// AddOrder - добавляет заказ, заведённый оператором. Единственный начальный
// статус - "ожидает назначения", входящий статус игнорируется.
func (s *OrderMemory) AddOrder(_ context.Context, order models.OrderData) (int64, error) {
	if err := checkAmounts(&order); err != nil {
		return 0, err
	}
	order.Status = models.OrderStatusPendingDispatch
	if order.RecordTime.IsZero() {
		order.RecordTime = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(&order), nil
}

// RestoreOrder - загружает заказ из стартового набора данных,
// сохраняя назначенный извне статус.
func (s *OrderMemory) RestoreOrder(_ context.Context, order models.OrderData) (int64, error) {
	if !models.KnownStatus(order.Status) {
		return 0, fmt.Errorf("status %q: %w", order.Status, ErrUnknownStatus)
	}
	if err := checkAmounts(&order); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(&order), nil
}

// Remind - отмечает, что по заказу отправлено напоминание.
// Флаг односторонний, повторное напоминание отклоняется.
func (s *OrderMemory) Remind(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if order.IsReminded {
		return fmt.Errorf("order %d already reminded: %w", id, ErrInvalidTransition)
	}
	order.IsReminded = true
	return nil
}

// Complete - переводит заказ в "завершён" и записывает данные расчёта.
// Проверки выполняются до изменения, частичных мутаций не бывает.
func (s *OrderMemory) Complete(_ context.Context, id int64, settlement models.SettlementData) error {
	if settlement.ActualPaid.IsNegative() || settlement.OtherReceipt.IsNegative() || settlement.CompletionIncome.IsNegative() {
		return fmt.Errorf("settlement: %w", ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if !canTransit(order.Status, models.OrderStatusCompleted) {
		return fmt.Errorf("order %d is %s: %w", id, order.Status, ErrInvalidTransition)
	}

	now := time.Now()
	order.Status = models.OrderStatusCompleted
	order.ActualPaid = settlement.ActualPaid
	order.OtherReceipt = settlement.OtherReceipt
	order.CompletionIncome = settlement.CompletionIncome
	order.FavoriteRemark = settlement.Remark
	order.CompletionTime = now
	order.PaymentTime = now
	return nil
}

// Void - аннулирует заказ с указанием автора и причины
func (s *OrderMemory) Void(_ context.Context, id int64, voider string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if !canTransit(order.Status, models.OrderStatusVoid) {
		return fmt.Errorf("order %d is %s: %w", id, order.Status, ErrInvalidTransition)
	}
	order.Status = models.OrderStatusVoid
	order.VoiderNameAndReason = fmt.Sprintf("%s / %s", voider, reason)
	order.VoidDetails = reason
	return nil
}

// MarkRead - отмечает заказ прочитанным (просмотр деталей)
func (s *OrderMemory) MarkRead(_ context.Context, id int64) error {
	return s.setFlag(id, func(o *models.OrderData) { o.IsRead = true })
}

// MarkCalled - отмечает, что по заказу открывали канал связи
func (s *OrderMemory) MarkCalled(_ context.Context, id int64) error {
	return s.setFlag(id, func(o *models.OrderData) { o.IsCalled = true })
}

// VerifyCoupon - отмечает купон погашенным
func (s *OrderMemory) VerifyCoupon(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if !order.HasCoupon {
		return fmt.Errorf("order %d has no coupon: %w", id, ErrInvalidTransition)
	}
	if order.IsCouponVerified {
		return fmt.Errorf("order %d coupon already verified: %w", id, ErrInvalidTransition)
	}
	order.IsCouponVerified = true
	return nil
}

// insert вызывается под мьютексом
func (s *OrderMemory) insert(order *models.OrderData) int64 {
	s.nextID++
	order.ID = s.nextID
	s.orders[order.ID] = order
	s.seq = append(s.seq, order.ID)
	return order.ID
}

func (s *OrderMemory) setFlag(id int64, set func(*models.OrderData)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	set(order)
	return nil
}

// checkAmounts - денежные поля заказа не могут быть отрицательными
func checkAmounts(order *models.OrderData) error {
	amounts := map[string]decimal.Decimal{
		"total_amount":           order.TotalAmount,
		"cost":                   order.Cost,
		"revenue":                order.Revenue,
		"actual_paid":            order.ActualPaid,
		"advance_payment_amount": order.AdvancePaymentAmount,
		"other_receipt":          order.OtherReceipt,
		"completion_income":      order.CompletionIncome,
		"guide_price":            order.GuidePrice,
		"deposit_amount":         order.DepositAmount,
	}
	for name, amount := range amounts {
		if amount.IsNegative() {
			return fmt.Errorf("%s: %w", name, ErrInvalidAmount)
		}
	}
	return nil
}
