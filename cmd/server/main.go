package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"assogest/internal/config"
	"assogest/internal/database"
	"assogest/internal/handler"
	"assogest/internal/queue"
	"assogest/internal/repository"
	"assogest/internal/router"
	"assogest/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	activities := repository.NewActivityRepo(db)
	members := repository.NewMemberRepo(db)
	lots := repository.NewLotRepo(db)
	tickets := repository.NewTicketRepo(db)
	expenses := repository.NewExpenseRepo(db)
	donations := repository.NewDonationRepo(db)
	memberDonations := repository.NewMemberDonationRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	issuer := service.NewIssuer(db, tickets)

	h := handler.New(activities, members, lots, tickets, expenses, donations, memberDonations, issuer)
	a := handler.NewAuthHandler(cfg, users, tokens)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.Register(e, cfg, h, a, rdb)

	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
