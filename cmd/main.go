package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/config"
	deps "github.com/yatrasetgo/packyourbags/internal/debs"
	api "github.com/yatrasetgo/packyourbags/internal/http/rest"
	smtp "github.com/yatrasetgo/packyourbags/util/email"
	"github.com/yatrasetgo/packyourbags/util/logger"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	logger.Setup()

	cfg := config.New()
	deps := deps.New(cfg)

	mailer := smtp.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		Mailer: mailer,
		DB:     deps.Pool(),
	}

	go deps.ChangeFeed.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown failed", err)
	}
	deps.DB.Close()
	log.Println("Database connections closed.")
}
