package main

import (
	"log"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/config"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/db"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/logger"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	zlog, err := logger.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer zlog.Sync()

	conn, err := db.Connect(cfg)
	if err != nil {
		zlog.Fatal("db connect error", zap.Error(err))
	}
	if err := conn.AutoMigrate(&model.Item{}, &model.DeletedItem{}, &model.ItemType{}, &model.Category{}); err != nil {
		zlog.Fatal("auto migrate error", zap.Error(err))
	}

	srv := server.New(conn)

	addr := ":" + cfg.Port
	zlog.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := srv.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
