package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chat-service/internal/config"
	"chat-service/internal/db"
	grpcsvc "chat-service/internal/grpc"
	"chat-service/internal/handlers"
	"chat-service/internal/metrics"
	"chat-service/internal/middleware"
	"chat-service/internal/observability"
	"chat-service/internal/rabbitmq"
	"chat-service/internal/repositories"
	"chat-service/internal/services"
	"chat-service/internal/telemetry"
	"chat-service/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	authClient, err := grpcsvc.NewAuthClient(cfg.AuthGRPCAddr)
	if err != nil {
		log.Fatalf("failed to create auth gRPC client: %v", err)
	}
	defer authClient.Close()

	publisher := rabbitmq.NewNoopPublisher()
	if pub, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.EventsExchange); err != nil {
		log.Printf("warning: failed to initialize RabbitMQ publisher: %v", err)
	} else {
		publisher = pub
	}
	defer publisher.Close()

	auditPublisher := rabbitmq.NewNoopPublisher()
	if pub, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.LogsExchange); err != nil {
		log.Printf("warning: failed to initialize RabbitMQ audit publisher: %v", err)
	} else {
		auditPublisher = pub
	}
	defer auditPublisher.Close()

	observability.InitMetrics(prometheus.DefaultRegisterer)
	metrics.RegisterChatMetrics()

	contactRepo := repositories.NewContactRepository(database, publisher)
	messageRepo := repositories.NewMessageRepository(database, publisher)
	userRepo := repositories.NewUserRepository(database)
	userService := services.NewUserService(authClient)

	auditEmitter := telemetry.NewAuditEmitter(auditPublisher, cfg.ServiceName, cfg.Environment)
	userHandler := handlers.NewUserHandler(userService, userRepo, contactRepo, cfg.AvailableContactsLimit)
	inviteHandler := handlers.NewInviteHandler(contactRepo, userService, auditEmitter)
	chatHandler := handlers.NewChatHandler(messageRepo, userService, auditEmitter)

	hub := ws.NewHub(slog.Default())

	if _, err := grpcsvc.StartGRPCServer(ctx, cfg.GRPCAddr, contactRepo, userService); err != nil {
		log.Fatalf("failed to start gRPC server: %v", err)
	}

	r := gin.Default()
	r.Use(gin.Recovery(), middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("", middleware.JWTAuth(cfg.JWTSecret))
	auth.GET("/", userHandler.GetMe)
	auth.GET("/contacts/available", userHandler.ListAvailable)
	auth.DELETE("/contacts/:contactID", userHandler.RemoveContact)
	auth.GET("/chat/:contactID", chatHandler.GetConversation)
	auth.GET("/chat/:contactID/outbound", chatHandler.GetOutboundLog)
	auth.POST("/chat/:contactID", chatHandler.PostMessage)
	auth.GET("/invites", inviteHandler.ListPending)
	auth.POST("/invites/:id", inviteHandler.Send)
	auth.POST("/invites/:id/accept", inviteHandler.Accept)
	auth.POST("/invites/:id/reject", inviteHandler.Reject)
	auth.GET("/ws", ws.Handler(hub, messageRepo, slog.Default()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
}
