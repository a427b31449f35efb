package cmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/acme/autocert"

	"github.com/khizarrao/folio/api"
	"github.com/khizarrao/folio/auth"
	"github.com/khizarrao/folio/content"
	"github.com/khizarrao/folio/mail"
	bboltstorage "github.com/khizarrao/folio/storage/bbolt"
	"github.com/khizarrao/folio/web"
)

var (
	port       int
	dataDir    string
	adminEmail string
	tlsCert    string
	tlsKey     string
	acmeHost   string
	devMode    bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the portfolio site server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Optional .env for ADMIN_EMAIL and RESEND_API_KEY.
		_ = godotenv.Load()

		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		repo, err := bboltstorage.NewRepositoryFromFile(dataDir+"/folio.db", nil)
		if err != nil {
			return fmt.Errorf("failed to open site storage: %w", err)
		}
		defer repo.Close()

		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

		if adminEmail == "" {
			adminEmail = os.Getenv("ADMIN_EMAIL")
		}

		var mailer auth.Mailer
		switch {
		case devMode:
			mailer = mail.NewLogMailer(logger)
		case os.Getenv("RESEND_API_KEY") != "" && adminEmail != "":
			mailer = mail.NewResend(os.Getenv("RESEND_API_KEY"), adminEmail)
		default:
			// Leave nil: OTP requests answer 503 until email is configured,
			// but the public site keeps serving.
			logger.Warn("RESEND_API_KEY or admin email missing; OTP login disabled")
		}

		a := api.New(
			auth.New(repo, mailer),
			content.NewStore(repo),
			api.WithLogger(logger),
		)

		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Mount("/api", a.Router())

		webHandler, err := web.Handler()
		if err != nil {
			return err
		}
		r.Handle("/*", webHandler)

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		useTLS := true
		switch {
		case acmeHost != "":
			manager := &autocert.Manager{
				Prompt:     autocert.AcceptTOS,
				HostPolicy: autocert.HostWhitelist(acmeHost),
				Cache:      autocert.DirCache(dataDir + "/autocert"),
			}
			server.TLSConfig = manager.TLSConfig()
			// Serve the ACME HTTP-01 challenge and redirect everything else.
			go func() {
				_ = http.ListenAndServe(":80", manager.HTTPHandler(nil))
			}()
		case tlsCert != "" && tlsKey != "":
			cert, err := tls.LoadX509KeyPair(tlsCert, tlsKey)
			if err != nil {
				return fmt.Errorf("failed to load TLS key pair: %w", err)
			}
			server.TLSConfig = &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			}
		default:
			// Plain HTTP: dev mode, or production behind a TLS-terminating proxy.
			useTLS = false
		}

		// Graceful shutdown on SIGINT/SIGTERM.
		done := make(chan error, 1)
		go func() {
			var err error
			if useTLS {
				err = server.ListenAndServeTLS("", "")
			} else {
				err = server.ListenAndServe()
			}
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				done <- fmt.Errorf("server failed: %w", err)
				return
			}
			done <- nil
		}()

		fmt.Printf("Starting server on port %d (data: %s)...\n", port, dataDir)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			fmt.Printf("\nReceived %s, shutting down...\n", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		case err := <-done:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	serverCmd.Flags().StringVar(&dataDir, "data-dir", "./data", "Directory for persistent data")
	serverCmd.Flags().StringVar(&adminEmail, "admin-email", "", "Administrator email for OTP delivery (or ADMIN_EMAIL)")
	serverCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to TLS certificate file")
	serverCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to TLS key file")
	serverCmd.Flags().StringVar(&acmeHost, "acme-host", "", "Public hostname for automatic Let's Encrypt certificates")
	serverCmd.Flags().BoolVar(&devMode, "dev", false, "Log OTP codes instead of emailing them")
}
