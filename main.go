package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	connStr := config.GetString(c, "DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "DB_HOST", ""),
			config.GetString(c, "DB_USER", ""),
			config.GetString(c, "DB_PASSWORD", ""),
			config.GetString(c, "DB_NAME", ""),
			config.GetString(c, "DB_PORT", "5432"),
		)
	}

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	passwordHash := config.GetString(c, "ADMIN_PASSWORD_HASH", "")
	sessionSecret := config.GetString(c, "SESSION_SECRET", "")
	if passwordHash == "" || sessionSecret == "" {
		fmt.Println("ADMIN_PASSWORD_HASH and SESSION_SECRET must be set. Exiting...")
		os.Exit(1)
	}
	sessionTTL := config.GetDuration(c, "SESSION_TTL", 12*time.Hour)
	sessions := services.NewSessionManager(passwordHash, sessionSecret, sessionTTL)

	storage, err := services.NewS3Storage(context.Background(), c)
	if err != nil {
		fmt.Printf("Error initializing object storage: %v\n", err)
		os.Exit(1)
	}
	journal := services.NewIntentJournal()
	uploader := services.NewUploader(storage, journal)
	reconciler := services.NewReconciler(storage, journal, currentDB)

	// Log session lifecycle transitions for the life of the process.
	events, cancelEvents := sessions.Subscribe()
	defer cancelEvents()
	go func() {
		for event := range events {
			log.Info().
				Str("event", string(event.Type)).
				Str("sessionID", event.Session.ID.String()).
				Msg("Session state changed")
		}
	}()

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, sessions, uploader, reconciler)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
