package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avorobev/payment-router/internal/app/config"
	"github.com/avorobev/payment-router/internal/app/controller/http/middleware/logger"
	"github.com/avorobev/payment-router/internal/app/controller/http/middleware/requestid"
	"github.com/avorobev/payment-router/internal/app/controller/http/orders"
)

type HTTPServer struct {
	server *http.Server

	config config.Config
	orders orders.Orders
}

func New(config config.Config, processor orders.OrderProcessor) *HTTPServer {
	order := orders.New(processor)

	mux := createMux(order)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	instance := &HTTPServer{
		server: server,
		config: config,
		orders: order,
	}

	return instance
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")
	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func createMux(orders orders.Orders) *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestid.RequestIDMiddleware)
	r.Use(logger.LoggerMiddleware)

	r.Post("/api/orders", orders.CreateOrder())
	r.Post("/api/orders/{id}/cancel", orders.CancelOrder())
	r.Post("/api/orders/{id}/pay", orders.PayOrder())

	r.Get("/api/orders/{id}", orders.GetOrder())
	r.Get("/api/orders", orders.ListOrders())

	return r
}
