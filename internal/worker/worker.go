package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/dispatch-board/internal/events"
	"github.com/denmor86/dispatch-board/internal/logger"
)

// NotifyWorker - фоновый воркер уведомлений: крутит бегущую строку
// объявлений по таймеру и печатает события мутаций с шины.
// Косметика, к хранилищу не обращается.
type NotifyWorker struct {
	Announcements []string
	Events        <-chan events.Event
	Interval      time.Duration
	WaitGroup     sync.WaitGroup
	QuitChan      chan struct{}
	next          int
}

// NewNotifyWorker - конструктор воркера уведомлений
func NewNotifyWorker(announcements []string, eventsCh <-chan events.Event, interval time.Duration) *NotifyWorker {
	return &NotifyWorker{
		Announcements: announcements,
		Events:        eventsCh,
		Interval:      interval,
		QuitChan:      make(chan struct{}),
	}
}

// Start - запускает воркер в фоне
func (w *NotifyWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *NotifyWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *NotifyWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("NotifyWorker signal stop")
			return
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			logger.Info("order event", string(event.Kind), "order", event.OrderID, "event", event.ID)
		case <-ticker.C:
			w.announce()
		}
	}
}

// announce - следующее объявление бегущей строки
func (w *NotifyWorker) announce() {
	if len(w.Announcements) == 0 {
		return
	}
	logger.Info("announcement:", w.Announcements[w.next])
	w.next = (w.next + 1) % len(w.Announcements)
}
