package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"meshconv/internal/logging"
	"meshconv/internal/server"
	"meshconv/internal/storage"
	"meshconv/pkg/fetch"
)

func ServeAppCommand() *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to convert GLB models over the web",
		Example: "meshconv serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server")

	return command
}

func runServe(port string) error {
	// Optional .env for local development; the real environment wins.
	_ = godotenv.Load()

	logger := logging.BuildLogger()

	timeout := fetch.DefaultTimeout
	if raw := os.Getenv("MESHCONV_FETCH_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parsing MESHCONV_FETCH_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	var store storage.ObjectStore
	if os.Getenv("MESHCONV_S3_ENDPOINT") != "" {
		minioStore, err := storage.NewMinioStore(storage.Config{
			Endpoint:  os.Getenv("MESHCONV_S3_ENDPOINT"),
			AccessKey: os.Getenv("MESHCONV_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("MESHCONV_S3_SECRET_KEY"),
			Bucket:    os.Getenv("MESHCONV_S3_BUCKET"),
		})
		if err != nil {
			return fmt.Errorf("connecting to object storage: %w", err)
		}
		store = minioStore
		logger.Info("Object storage configured, persisted delivery enabled")
	} else {
		logger.Info("No object storage configured, only direct delivery is available")
	}

	return server.New(server.Config{
		Port:         port,
		FetchTimeout: timeout,
		Store:        store,
	}).Run()
}
