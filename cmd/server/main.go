package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/envelopes-app/backend/internal/api/handlers"
	"github.com/envelopes-app/backend/internal/api/middleware"
	"github.com/envelopes-app/backend/internal/logger"
	"github.com/envelopes-app/backend/internal/recurring"
	"github.com/envelopes-app/backend/internal/service"
	"github.com/envelopes-app/backend/internal/store"
)

func main() {
	log := logger.New(os.Getenv("LOG_PRETTY") == "true")

	// NOTE: Default is 8111 to avoid conflicts with other projects (not 8080)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8111"
	}

	ctx := context.Background()

	// Determine if we're running locally
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"

	var storeImpl store.Store
	if useMemoryStore {
		log.Info().Msg("Using in-memory store for local development")
		storeImpl = store.NewMemoryStore()
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			log.Fatal().Msg("GOOGLE_CLOUD_PROJECT is required when not using the memory store")
		}

		firestoreClient, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Firestore client")
		}
		defer firestoreClient.Close()

		storeImpl = store.NewFirestoreStore(firestoreClient)
	}

	detector := recurring.NewDetector(recurring.DefaultConfig())
	detectionService := service.NewDetectionService(storeImpl, detector)

	mux := http.NewServeMux()
	handlers.NewDetectionHandler(detectionService, log).Register(mux)

	var handler http.Handler = mux
	handler = middleware.Logger(log)(handler)
	handler = middleware.Recovery(log)(handler)
	handler = middleware.RequestID(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:1234",
			"http://127.0.0.1:1234",
			"https://envelopes.app",
			"https://www.envelopes.app",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
			"X-Request-ID",
		},
		AllowCredentials: true,
	})
	handler = c.Handler(handler)

	// HTTP/2 without TLS so Cloud Run can speak h2c to the container.
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	log.Info().Str("port", port).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
