package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"daydo/handlers"
	"daydo/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			utils.Logger.Info("No .env file found, continuing")
		}
	}
	utils.Logger.Infow("starting", "environment", os.Getenv("APP_ENV"))

	// Pick the user store: Postgres when DATABASE_URL is set, otherwise one
	// JSON file per user under STORAGE_DIR.
	var store utils.UserStore
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := utils.OpenDB(dsn)
		if err != nil {
			utils.Logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		store, err = utils.NewPGStore(pool)
		if err != nil {
			utils.Logger.Fatalf("Failed to prepare database store: %v", err)
		}
	} else {
		dir := os.Getenv("STORAGE_DIR")
		if dir == "" {
			dir = "./users"
		}
		fileStore, err := utils.NewFileStore(dir)
		if err != nil {
			utils.Logger.Fatalf("Failed to prepare storage directory: %v", err)
		}
		store = fileStore
	}

	// Sessions live in process memory unless REDIS_URL points at a cache.
	var registry utils.SessionRegistry = utils.NewMemoryRegistry()
	if redisDSN := os.Getenv("REDIS_URL"); redisDSN != "" {
		client := utils.OpenRedisPool(redisDSN)
		defer client.Close()
		registry = &utils.RedisRegistry{Client: client}
	}

	loc := time.UTC
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			utils.Logger.Fatalf("Invalid TIMEZONE %q: %v", tz, err)
		}
		loc = l
	}
	tasks := utils.NewTaskService(store, loc)

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		handlers.Register(w, r, store)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		handlers.Login(w, r, store, registry)
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		handlers.Logout(w, r, registry)
	})
	mux.HandleFunc("/addTask", func(w http.ResponseWriter, r *http.Request) {
		handlers.AddTask(w, r, registry, tasks)
	})
	mux.HandleFunc("/completeTask", func(w http.ResponseWriter, r *http.Request) {
		handlers.CompleteTask(w, r, registry, tasks)
	})
	mux.HandleFunc("/deleteTask", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteTask(w, r, registry, tasks)
	})
	mux.HandleFunc("/editTask", func(w http.ResponseWriter, r *http.Request) {
		handlers.EditTask(w, r, registry, tasks)
	})
	mux.HandleFunc("/getTasks", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetTasks(w, r, registry, tasks)
	})
	mux.HandleFunc("/getAnalysis", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetAnalysis(w, r, registry, tasks)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	utils.Logger.Infof("Starting server on :%s", port)
	if err := http.ListenAndServe(":"+port, utils.LogRequests(mux)); err != nil {
		utils.Logger.Fatalf("Server failed: %v", err)
	}
}
