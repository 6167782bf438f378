package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/vehicle-tco/internal/auth"
	"github.com/ukydev/vehicle-tco/internal/db"
	"github.com/ukydev/vehicle-tco/internal/feed"
	"github.com/ukydev/vehicle-tco/internal/handlers"
	"github.com/ukydev/vehicle-tco/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}
	log.SetFormatter(&log.JSONFormatter{})

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	database := db.Database(client)
	log.Info("Connected to MongoDB")

	prefStore := &db.MongoPreferenceStore{Collection: database.Collection(db.CollectionPreferences)}
	snapStore := &db.MongoSnapshotStore{Collection: database.Collection(db.CollectionSnapshots)}
	userColl := &db.MongoUserCollection{Collection: database.Collection(db.CollectionUsers)}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}
	authMw := middleware.NewAuthMiddleware(authService)
	rateMw := middleware.NewRateLimitMiddleware()

	authHandler := handlers.NewAuthHandler(authService, userColl)
	estimateHandler := handlers.NewEstimateHandler(prefStore, snapStore)
	preferencesHandler := handlers.NewPreferencesHandler(prefStore)
	historyHandler := handlers.NewHistoryHandler(snapStore)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.Handle("/api/estimate", authMw.RequirePermission("estimate")(estimateHandler))
	mux.Handle("/api/preferences", preferencesRouter(authMw, preferencesHandler))
	mux.Handle("/api/history", authMw.RequirePermission("view_history")(historyHandler))

	handler := rateMw.RateLimit(120, 60)(authMw.Authenticate(mux))

	// The listing feed is optional; without a broker the API still serves.
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		subscriber, err := feed.NewSubscriber(broker, os.Getenv("MQTT_TOPIC"), prefStore, snapStore)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect listing feed")
		}
		if err := subscriber.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start listing feed")
		}
		defer subscriber.Stop()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// preferencesRouter gates writes behind the write permission while keeping
// reads open to every authenticated role.
func preferencesRouter(authMw *middleware.AuthMiddleware, h http.Handler) http.Handler {
	read := authMw.RequirePermission("read_preferences")(h)
	write := authMw.RequirePermission("write_preferences")(h)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			write.ServeHTTP(w, r)
			return
		}
		read.ServeHTTP(w, r)
	})
}
