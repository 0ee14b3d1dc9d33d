package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"parley"
	httpadapter "parley/internal/adapters/http"
	"parley/internal/metrics"
	"parley/pkg/adapters/memory"
	redisadapter "parley/pkg/adapters/redis"
	"parley/pkg/persistence/middleware"
	"parley/pkg/ports"
	"parley/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP dialog server",
	Long: `Starts the engine in server mode, exposing the dialog as a JSON API.
Sessions live in memory by default; pass --redis to persist them and to
serialize turns across replicas.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		ttl, _ := cmd.Flags().GetDuration("session-ttl")

		collector := metrics.NewCollector(prometheus.DefaultRegisterer)

		engine, err := loadEngine(cmd, logger, parley.WithLifecycleHooks(collector.Hooks()))
		if err != nil {
			fmt.Printf("Error initializing parley: %v\n", err)
			os.Exit(1)
		}

		var store ports.SessionStore
		managerOpts := []session.Option{session.WithLogger(logger)}
		if redisAddr != "" {
			client := backend.NewClient(&backend.Options{Addr: redisAddr})
			store = redisadapter.NewFromClient(client, redisadapter.WithTTL(ttl))
			managerOpts = append(managerOpts, session.WithLocker(redisadapter.NewLocker(client, "parley:")))
			logger.Info("using redis session store", "addr", redisAddr, "ttl", ttl)
		} else {
			store = memory.NewStore()
			logger.Info("using in-memory session store")
		}

		encKeyHex, _ := cmd.Flags().GetString("encryption-key")
		if encKeyHex != "" {
			key, err := hex.DecodeString(encKeyHex)
			if err != nil || len(key) != 32 {
				fmt.Println("Error: --encryption-key must be 64 hex characters (AES-256)")
				os.Exit(1)
			}
			store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(store)
			logger.Info("session encryption at rest enabled")
		}

		maskSlots, _ := cmd.Flags().GetStringSlice("mask-slots")
		if len(maskSlots) > 0 {
			store = middleware.NewPIIMiddleware(maskSlots)(store)
			logger.Info("PII masking enabled", "patterns", maskSlots)
		}

		sessions := session.NewManager(store, managerOpts...)
		handler := httpadapter.NewHandler(engine, sessions, httpadapter.WithLogger(logger))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/", handler)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: mux,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting parley server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("parley server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for session persistence (host:port)")
	serveCmd.Flags().Duration("session-ttl", 0, "Session expiry when using redis (0 = no expiry)")
	serveCmd.Flags().String("encryption-key", "", "Hex-encoded 32-byte key for session encryption at rest")
	serveCmd.Flags().StringSlice("mask-slots", nil, "Slot name patterns whose values are masked at rest")
}
