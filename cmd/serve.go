package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "github.com/Shubhamagrahari9191/Todolist/internal/configs"
	httpapi "github.com/Shubhamagrahari9191/Todolist/internal/http"
	"github.com/Shubhamagrahari9191/Todolist/internal/otp"
	repository "github.com/Shubhamagrahari9191/Todolist/internal/repositories"
	"github.com/Shubhamagrahari9191/Todolist/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the planner HTTP API: auth, tasks, analytics and report export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		otpStore := otp.NewRedisStore(redisClient)

		var mailer otp.Mailer
		if cfg.EmailUser != "" && cfg.EmailPass != "" {
			mailer = otp.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
		}

		issuer := otp.NewIssuer(otpStore, mailer, time.Duration(cfg.OtpTTLMinutes)*time.Minute)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		authService := services.NewAuthService(userRepo, issuer)
		taskService := services.NewTaskService(taskRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()

		handler := httpapi.NewHandler(authService, taskService)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
