package main

import (
	"fmt"

	"github.com/denmor86/dispatch-board/internal/app"
	"github.com/denmor86/dispatch-board/internal/config"
	"github.com/denmor86/dispatch-board/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// запуск пульта заказов
	if err := app.Run(config); err != nil {
		logger.Error("console stopped with error", err.Error())
	}
}
