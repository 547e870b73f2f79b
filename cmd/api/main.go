package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	"github.com/rajivgeraev/phoneswap-api/internal/config"
	"github.com/rajivgeraev/phoneswap-api/internal/db"
	"github.com/rajivgeraev/phoneswap-api/internal/server"
	"github.com/rajivgeraev/phoneswap-api/internal/storage"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключаем хранилище
	store, err := db.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Ошибка при подключении к хранилищу %q: %v", cfg.Storage.Driver, err)
	}
	defer store.Close()

	// Загружаем объявления и обмены
	state := app.New(storage.NewRepository(store, cfg.Storage.Namespace), app.Options{
		GuarantorFee:  cfg.GuarantorFee,
		DefaultLocale: cfg.DefaultLocale,
	})
	if err := state.Init(ctx); err != nil {
		log.Fatalf("❌ Ошибка загрузки данных: %v", err)
	}

	srv := server.New(cfg, state)

	go func() {
		<-ctx.Done()
		log.Println("⏳ Останавливаем сервер...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("❌ Ошибка остановки сервера: %v", err)
		}
	}()

	// Запускаем сервер
	log.Printf("✅ PhoneSwap API запущен на порту %s (хранилище: %s)", cfg.Port, cfg.Storage.Driver)
	if err := srv.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Сервер остановлен с ошибкой: %v", err)
	}

	// Сохраняем состояние перед выходом
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := state.Close(saveCtx); err != nil {
		log.Printf("❌ Ошибка сохранения данных: %v", err)
	}
	log.Println("👋 Сервер остановлен")
}
