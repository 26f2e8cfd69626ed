package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"ticket-tracker/handlers"
	"ticket-tracker/logging"
	"ticket-tracker/middleware"
	"ticket-tracker/services"
	"ticket-tracker/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Boards Service...")
	err := godotenv.Load(".env")
	if err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	httpClient := utils.NewHTTPClient()

	notificationsBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notifications-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' state changed from %s to %s", name, from.String(), to.String())
		},
	})

	autoCompletePrevious := os.Getenv("SPRINT_AUTO_COMPLETE") == "true"

	notifier := services.NewNotifier(httpClient, notificationsBreaker)
	boardService := services.NewBoardService(client, mongoDBName, notifier)
	sprintService := services.NewSprintService(client, mongoDBName, notifier, autoCompletePrevious)
	taskService := services.NewTaskService(client, mongoDBName)

	boardHandler := handlers.NewBoardHandler(boardService)
	sprintHandler := handlers.NewSprintHandler(sprintService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := mux.NewRouter()

	r.HandleFunc("/api/health", func(w http.ResponseWriter, req *http.Request) {
		if err := client.Ping(req.Context(), nil); err != nil {
			http.Error(w, `{"status": "degraded"}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTAuthMiddleware)

	api.HandleFunc("/boards", boardHandler.CreateBoard).Methods(http.MethodPost)
	api.HandleFunc("/boards", boardHandler.ListBoards).Methods(http.MethodGet)
	api.HandleFunc("/boards/{id}", boardHandler.GetBoard).Methods(http.MethodGet)
	api.HandleFunc("/boards/{id}", boardHandler.UpdateBoardSettings).Methods(http.MethodPatch)
	api.HandleFunc("/boards/{id}", boardHandler.DeleteBoard).Methods(http.MethodDelete)
	api.HandleFunc("/boards/{id}/permissions", boardHandler.GetBoardPermissions).Methods(http.MethodGet)
	api.HandleFunc("/boards/{id}/collaborators", boardHandler.AddCollaborator).Methods(http.MethodPost)
	api.HandleFunc("/boards/{id}/collaborators/{email}", boardHandler.RemoveCollaborator).Methods(http.MethodDelete)
	api.HandleFunc("/boards/{id}/collaborators/{email}/role", boardHandler.SetCollaboratorRole).Methods(http.MethodPatch)

	api.HandleFunc("/sprints", sprintHandler.CreateSprint).Methods(http.MethodPost)
	api.HandleFunc("/sprints/board/{boardId}", sprintHandler.GetSprintsByBoard).Methods(http.MethodGet)
	api.HandleFunc("/sprints/board/{boardId}/active", sprintHandler.GetActiveSprint).Methods(http.MethodGet)
	api.HandleFunc("/sprints/{id}", sprintHandler.GetSprint).Methods(http.MethodGet)
	api.HandleFunc("/sprints/{id}", sprintHandler.UpdateSprint).Methods(http.MethodPatch)
	api.HandleFunc("/sprints/{id}", sprintHandler.DeleteSprint).Methods(http.MethodDelete)
	api.HandleFunc("/sprints/{id}/start", sprintHandler.StartSprint).Methods(http.MethodPost)
	api.HandleFunc("/sprints/{id}/complete", sprintHandler.CompleteSprint).Methods(http.MethodPost)
	api.HandleFunc("/sprints/{id}/tasks", sprintHandler.AssignTasks).Methods(http.MethodPost)
	api.HandleFunc("/sprints/{id}/capacity", sprintHandler.GetSprintCapacity).Methods(http.MethodGet)

	api.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/board/{boardId}", taskHandler.GetTasksByBoard).Methods(http.MethodGet)
	api.HandleFunc("/tasks/sprint/{sprintId}", taskHandler.GetTasksBySprint).Methods(http.MethodGet)
	api.HandleFunc("/tasks/status", taskHandler.ChangeTaskStatus).Methods(http.MethodPost)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
