package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atlasai/atlas-backend/internal/config"
	"github.com/atlasai/atlas-backend/internal/db"
	"github.com/atlasai/atlas-backend/internal/llm"
	"github.com/atlasai/atlas-backend/internal/originstory"
	"github.com/atlasai/atlas-backend/internal/roadmap"
	"github.com/atlasai/atlas-backend/internal/server/middleware"
	"github.com/atlasai/atlas-backend/internal/server/ratelimit"
)

// Store is the database surface the HTTP handlers depend on.
type Store interface {
	UserDB

	Ping(ctx context.Context) error
	UpdateUserName(ctx context.Context, userID uuid.UUID, name string) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update db.ProfileUpdate) (*db.Profile, error)
	AwardXP(ctx context.Context, userID uuid.UUID, action string, amount int) (int, error)
	SaveRoadmap(ctx context.Context, userID uuid.UUID, roadmap any) error

	EnsureSkill(ctx context.Context, name, category string) (uuid.UUID, error)
	AddUserSkill(ctx context.Context, userID, skillID uuid.UUID, proficiency float64, source string) error
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]db.UserSkill, error)
	RemoveUserSkill(ctx context.Context, userID, skillID uuid.UUID) error

	CreateProject(ctx context.Context, userID uuid.UUID, title, description, githubURL, liveURL string, techStack []string, featured bool) (*db.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]db.Project, error)
	DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error
}

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	store          Store
	logger         *zap.Logger
	engine         *originstory.Engine
	roadmaps       *roadmap.Generator
	llmClient      llm.Client
	jwtService     *JWTService
	userService    *UserService
	authHandler    *AuthHandler
	validator      *validator.Validate
	limiter        *ratelimit.Limiter
	allowedOrigins []string
}

// New creates a new server instance
func New(ctx context.Context, cfg *config.ServerConfig, logger *zap.Logger) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	catalog, err := originstory.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load stream catalog: %w", err)
	}

	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		llmClient, err = llm.NewClient(ctx, nil, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	s := newServer(database, catalog, llmClient, logger, cfg.AllowedOrigins)

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires the non-network pieces. Split out so tests can build
// a server around a stub store without a database.
func newServer(store Store, catalog *originstory.Catalog, llmClient llm.Client, logger *zap.Logger, origins []string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{
		store:          store,
		logger:         logger,
		engine:         originstory.NewEngine(catalog),
		roadmaps:       roadmap.NewGenerator(llmClient, logger),
		llmClient:      llmClient,
		validator:      validator.New(),
		limiter:        ratelimit.NewLimiter(ratelimit.LoadConfig()),
		allowedOrigins: origins,
	}
}

// Routes builds the HTTP handler with all endpoints and middleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.Handle("PUT /api/auth/password", auth(http.HandlerFunc(s.handleUpdatePassword)))

	// Origin Story quiz and recommendations
	mux.HandleFunc("GET /api/origin-story/questions", s.handleQuestions)
	mux.Handle("POST /api/origin-story/recommend", auth(http.HandlerFunc(s.handleRecommend)))
	mux.HandleFunc("GET /api/origin-story/stream/{stream_id}", s.handleGetStream)

	// Profile
	mux.Handle("GET /api/profile", auth(http.HandlerFunc(s.handleGetProfile)))
	mux.Handle("PUT /api/profile", auth(http.HandlerFunc(s.handleUpdateProfile)))
	mux.Handle("GET /api/profile/gamification", auth(http.HandlerFunc(s.handleGamification)))

	// Skills
	mux.Handle("GET /api/profile/skills", auth(http.HandlerFunc(s.handleListSkills)))
	mux.Handle("POST /api/profile/skills", auth(http.HandlerFunc(s.handleAddSkill)))
	mux.Handle("DELETE /api/profile/skills/{skill_id}", auth(http.HandlerFunc(s.handleRemoveSkill)))

	// Projects
	mux.Handle("GET /api/profile/projects", auth(http.HandlerFunc(s.handleListProjects)))
	mux.Handle("POST /api/profile/projects", auth(http.HandlerFunc(s.handleCreateProject)))
	mux.Handle("DELETE /api/profile/projects/{project_id}", auth(http.HandlerFunc(s.handleDeleteProject)))

	// Onboarding
	mux.Handle("GET /api/onboarding/status", auth(http.HandlerFunc(s.handleOnboardingStatus)))
	mux.Handle("POST /api/onboarding/complete", auth(http.HandlerFunc(s.handleCompleteOnboarding)))

	// Career tools
	mux.Handle("POST /api/career/verify-job", auth(http.HandlerFunc(s.handleVerifyJob)))
	mux.Handle("POST /api/career/verify-jobs", auth(http.HandlerFunc(s.handleVerifyJobs)))

	// Roadmap
	mux.Handle("POST /api/roadmap/generate", auth(http.HandlerFunc(s.handleGenerateRoadmap)))

	return s.withLogging(s.withCORS(s.withRateLimit(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			s.logger.Warn("failed to close LLM client", zap.Error(err))
		}
	}
	if database, ok := s.store.(*db.DB); ok {
		database.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers. A single configured origin (or "*") is sent
// as-is; with several, the matching request Origin is echoed back, since
// browsers reject a comma-joined Allow-Origin value.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.corsOrigin(r); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if len(s.allowedOrigins) > 1 {
				w.Header().Add("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// corsOrigin resolves the Access-Control-Allow-Origin value for a request.
// Returns "" when the request origin is not in the allow list.
func (s *Server) corsOrigin(r *http.Request) string {
	if len(s.allowedOrigins) == 1 {
		return s.allowedOrigins[0]
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range s.allowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// withRateLimit enforces per-client token bucket limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			clientID = host
		}

		allowed, info := s.limiter.Allow(clientID, r.URL.Path, r.Method)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
		}
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	s.jsonResponse(w, code, map[string]string{"status": status})
}

// handleUpdatePassword handles password update requests.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
