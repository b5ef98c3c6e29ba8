package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/denmor86/dispatch-board/internal/chat"
	"github.com/denmor86/dispatch-board/internal/config"
	"github.com/denmor86/dispatch-board/internal/console"
	"github.com/denmor86/dispatch-board/internal/events"
	"github.com/denmor86/dispatch-board/internal/logger"
	"github.com/denmor86/dispatch-board/internal/reports"
	"github.com/denmor86/dispatch-board/internal/seed"
	"github.com/denmor86/dispatch-board/internal/services"
	"github.com/denmor86/dispatch-board/internal/storage"
	"github.com/denmor86/dispatch-board/internal/worker"
)

func Run(config config.Config) error {

	store := storage.NewStorage()

	// стартовый набор данных
	doc, err := seed.Load(config.Board.SeedPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := seed.Apply(ctx, doc, store); err != nil {
		return err
	}

	bus := events.NewBus()
	defer bus.Close()

	// создание и запуск воркера уведомлений
	notify := worker.NewNotifyWorker(doc.Announcements, bus.Subscribe(16), config.MarqueeInterval)
	notify.Start(ctx)
	defer notify.Stop()

	projection := services.NewProjection(store.Orders)
	paginator := services.NewPaginator(config.Board.PageSize)
	overview := services.NewOverview(store.Orders)
	registry := reports.NewRegistry(store.Reports)
	chats := chat.NewManager(config.Chat.Rate, config.Chat.Burst)

	ui := console.New(os.Stdin, os.Stdout, projection, paginator, overview, registry, chats, store.Orders)
	// консоль же реализует подтверждающие диалоги диспетчера
	ui.Dispatcher = services.NewDispatcher(store.Orders, ui, bus, config.Board.Operator)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		logger.Info("Starting console config:", config)
		done <- ui.Run(ctx)
	}()

	select {
	case <-stop:
		logger.Info("Shutdown console")
		return nil
	case err := <-done:
		return err
	}
}
