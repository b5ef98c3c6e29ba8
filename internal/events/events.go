package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Виды событий по заказам
type Kind string

const (
	KindCreated        Kind = "created"
	KindReminded       Kind = "reminded"
	KindCompleted      Kind = "completed"
	KindVoided         Kind = "voided"
	KindContacted      Kind = "contacted"
	KindCouponVerified Kind = "coupon_verified"
)

// Event - событие об успешной мутации заказа
type Event struct {
	ID      string
	Kind    Kind
	OrderID int64
	At      time.Time
}

// New - создание события с уникальным идентификатором
func New(kind Kind, orderID int64) Event {
	return Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		OrderID: orderID,
		At:      time.Now(),
	}
}

// Bus - внутрипроцессная шина событий. Публикация не блокируется:
// подписчик с переполненным буфером событие пропускает.
type Bus struct {
	mu     sync.Mutex
	subs   []chan Event
	closed bool
}

// Создание шины
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe - регистрирует подписчика с буфером указанного размера
func (b *Bus) Subscribe(buffer int) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, buffer)
	b.subs = append(b.subs, ch)
	return ch
}

// Publish - рассылает событие всем подписчикам
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close - закрывает каналы подписчиков
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
}
