package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chat-sim/internal/config"
	"chat-sim/internal/handlers"
	"chat-sim/internal/ingress"
	"chat-sim/internal/observability"
	"chat-sim/internal/rabbitmq"
	"chat-sim/internal/seed"
	"chat-sim/internal/store"
	"chat-sim/internal/telemetry"
)

func main() {
	cfg := config.Load()

	publisher := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	defer publisher.Close()
	log.Printf("event publisher mode=%s", rabbitmq.PublisherMode(publisher))

	emitter := telemetry.NewEmitter(publisher, "chat_events.store", "chat-sim", cfg.Environment)

	st := store.New(emitter)
	seed.Apply(st, time.Now())

	sim := ingress.New(st, ingress.Config{
		Interval:    cfg.IngressInterval,
		Probability: cfg.IngressProbability,
		MinDelay:    cfg.IngressMinDelay,
		MaxDelay:    cfg.IngressMaxDelay,
	})
	go sim.Start()

	stateHandler := handlers.NewStateHandler(st)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(observability.HTTPMetricsMiddleware())

	router.GET("/healthz", stateHandler.Health)
	router.GET("/state/groups", stateHandler.ListGroups)
	router.GET("/state/groups/:group_id/members", stateHandler.GroupMembers)
	router.GET("/state/groups/:group_id/messages", stateHandler.GroupMessages)
	router.GET("/state/active", stateHandler.ActiveState)
	router.GET("/state/typing", stateHandler.TypingUsers)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterDebugRoutes(router, emitter, cfg.EnableDebugRoutes)

	go func() {
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sim.Stop()
	log.Printf("shutting down")
}
