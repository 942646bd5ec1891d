package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fdg312/thali/internal/auth"
	"github.com/fdg312/thali/internal/blob"
	"github.com/fdg312/thali/internal/config"
	"github.com/fdg312/thali/internal/dashboard"
	"github.com/fdg312/thali/internal/mealplans"
	"github.com/fdg312/thali/internal/meals"
	"github.com/fdg312/thali/internal/recipes"
	"github.com/fdg312/thali/internal/reports"
	"github.com/fdg312/thali/internal/session"
	"github.com/fdg312/thali/internal/storage"
	"github.com/fdg312/thali/internal/storage/memory"
	"github.com/fdg312/thali/internal/storage/postgres"
	"github.com/fdg312/thali/internal/storage/sqlite"
	"github.com/fdg312/thali/internal/templates"
)

// Server представляет HTTP сервер
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	backend        storage.Backend
	storageMode    string
	sessions       *session.Manager
	templates      *templates.Source
	authMiddleware *auth.Middleware
	httpServer     *http.Server
}

// New создаёт новый HTTP сервер
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	// Инициализируем storage
	s.initStorage()

	s.sessions = session.NewManager(s.backend,
		session.WithLocation(cfg.Location()),
		session.WithLogger(log.Default()),
	)

	src, err := templates.New(cfg.MealTemplatePath)
	if err != nil {
		log.Fatalf("FATAL templates: load %s: %v", cfg.MealTemplatePath, err)
	}
	if err := src.Watch(); err != nil {
		log.Printf("WARN templates: hot reload disabled: %v", err)
	}
	s.templates = src

	// Регистрируем маршруты
	s.routes()
	return s
}

// initStorage выбирает backend по STORAGE_MODE. В режиме auto Postgres
// используется только при заданном DATABASE_URL, с fallback на память.
func (s *Server) initStorage() {
	ctx := context.Background()

	switch s.config.StorageMode {
	case config.StorageModeMemory:
		s.useMemory()
	case config.StorageModeSQLite:
		log.Printf("Открытие SQLite: %s", s.config.SQLitePath)
		store, err := sqlite.New(ctx, s.config.SQLitePath)
		if err != nil {
			log.Fatalf("FATAL storage: sqlite %s: %v", s.config.SQLitePath, err)
		}
		s.backend, s.storageMode = store, config.StorageModeSQLite
	case config.StorageModePostgres:
		log.Println("Подключение к PostgreSQL...")
		store, err := postgres.New(ctx, s.config.DatabaseURL)
		if err != nil {
			log.Fatalf("FATAL storage: postgres: %v", err)
		}
		log.Println("PostgreSQL подключен успешно")
		s.backend, s.storageMode = store, config.StorageModePostgres
	default:
		if s.config.DatabaseURL == "" {
			s.useMemory()
			return
		}
		log.Println("Подключение к PostgreSQL...")
		store, err := postgres.New(ctx, s.config.DatabaseURL)
		if err != nil {
			log.Printf("Ошибка подключения к PostgreSQL: %v", err)
			log.Println("Fallback на in-memory storage")
			s.useMemory()
			return
		}
		log.Println("PostgreSQL подключен успешно")
		s.backend, s.storageMode = store, config.StorageModePostgres
	}
}

func (s *Server) useMemory() {
	log.Println("Используется in-memory storage")
	s.backend, s.storageMode = memory.New(), config.StorageModeMemory
}

// routes регистрирует маршруты
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API
	authService := auth.NewService(s.config, s.sessions)
	authHandler := auth.NewHandlers(authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - dev token, opens the user's session
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevAuth)
	// POST /v1/auth/signout - closes the session, persisted data stays
	s.mux.HandleFunc("POST /v1/auth/signout", authHandler.HandleSignOut)

	// Recipes API (static catalog)
	catalog := recipes.Default()
	recipesHandler := recipes.NewHandler(catalog)
	s.mux.HandleFunc("GET /v1/recipes", recipesHandler.HandleList)
	s.mux.HandleFunc("GET /v1/recipes/{id}", recipesHandler.HandleGet)

	// Meal plans API
	plansService := mealplans.NewService(s.sessions, s.templates)
	plansHandler := mealplans.NewHandler(plansService)
	s.mux.HandleFunc("POST /v1/meal-plan/generate", plansHandler.HandleGenerate)
	s.mux.HandleFunc("POST /v1/meal-plan/save", plansHandler.HandleSave)
	s.mux.HandleFunc("GET /v1/meal-plan/saved", plansHandler.HandleGetSaved)
	s.mux.HandleFunc("DELETE /v1/meal-plan/saved", plansHandler.HandleDeleteSaved)
	s.mux.HandleFunc("GET /v1/meal-plan/template", plansHandler.HandleTemplate)
	s.mux.HandleFunc("GET /v1/meal-plan/options", plansHandler.HandleOptions)

	// Meal log API
	mealsService := meals.NewService(s.sessions, catalog, s.config.MealsMaxPerDay)
	mealsHandler := meals.NewHandler(mealsService)
	s.mux.HandleFunc("POST /v1/meals", mealsHandler.HandleAdd)
	s.mux.HandleFunc("GET /v1/meals", mealsHandler.HandleList)
	s.mux.HandleFunc("GET /v1/meals/summary", mealsHandler.HandleSummary)
	s.mux.HandleFunc("DELETE /v1/meals/today", mealsHandler.HandleClearToday)
	s.mux.HandleFunc("PATCH /v1/meals/{id}", mealsHandler.HandleUpdate)
	s.mux.HandleFunc("DELETE /v1/meals/{id}", mealsHandler.HandleDelete)
	s.mux.HandleFunc("DELETE /v1/meals", mealsHandler.HandleClearAll)

	// Dashboard API
	dashboardService := dashboard.NewService(s.sessions, plansService, s.config.DefaultCalorieTarget)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	s.mux.HandleFunc("GET /v1/dashboard", dashboardHandler.HandleGet)

	// Reports API
	blobStore := s.initBlobStore()
	reportsService := reports.NewService(s.sessions, plansService, blobStore, reports.Options{
		MaxRangeDays:    s.config.ReportsMaxRangeDays,
		PresignTTL:      s.config.Blob.S3.PresignTTLSeconds,
		PublicBaseURL:   s.config.Blob.S3.PublicBaseURL,
		PreferPublicURL: s.config.Blob.S3.PreferPublicURL,
	})
	reportsHandler := reports.NewHandlers(reportsService)
	s.mux.HandleFunc("GET /v1/reports/meal-plan", reportsHandler.HandleMealPlan)
	s.mux.HandleFunc("GET /v1/reports/meal-log", reportsHandler.HandleMealLog)
}

// initBlobStore returns nil in local mode; reports are then streamed inline.
func (s *Server) initBlobStore() blob.Store {
	store, mode, err := blob.NewBlobStore(context.Background(), s.config.Blob, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: %v", err)
	}
	if mode == config.BlobModeLocal {
		return nil
	}
	return store
}

// handleHealthz возвращает статус сервера
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status":         "ok",
		"storage":        s.storageMode,
		"activeSessions": s.sessions.Active(),
	})
}

// Handler builds the middleware chain (outermost first): CORS → Rate Limit → Auth → Router.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	if s.authMiddleware != nil {
		handler = s.authMiddleware.Wrap(handler)
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

// Start запускает HTTP сервер. Возвращает nil после Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Сервер запущен на http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)
	log.Printf("Meal plan API: http://localhost%s/v1/meal-plan/options\n", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает приём запросов и ждёт активные.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Close закрывает watcher шаблона и storage
func (s *Server) Close() error {
	if s.templates != nil {
		if err := s.templates.Close(); err != nil {
			log.Printf("WARN templates: close watcher: %v", err)
		}
	}
	if s.backend != nil {
		return s.backend.Close()
	}
	return nil
}
