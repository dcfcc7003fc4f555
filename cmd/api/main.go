package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	appconfig "github.com/talentflow-hq/talentflow/internal/config"
	"github.com/talentflow-hq/talentflow/internal/database"
	"github.com/talentflow-hq/talentflow/internal/handlers"
	"github.com/talentflow-hq/talentflow/internal/middleware"
	"github.com/talentflow-hq/talentflow/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := appconfig.LoadConfig()
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	// 2. Database Connection + Seed
	db, err := database.Connect(cfg.DatabasePath, logger)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	if cfg.SeedOnStart {
		if err := database.Seed(db, logger); err != nil {
			logger.Fatal("seeding database", zap.Error(err))
		}
	}

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db, logger)
	candidateService := services.NewCandidateService(db, logger, cfg.KnownUsers)
	assessmentService := services.NewAssessmentService(db, logger)
	analyticsService := services.NewAnalyticsService(db, logger)

	// 4. Initialize Handlers
	api := &handlers.API{
		Jobs:        handlers.NewJobHandler(jobService),
		Candidates:  handlers.NewCandidateHandler(candidateService),
		Assessments: handlers.NewAssessmentHandler(assessmentService),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService),
	}

	// 5. Setup Router & CORS
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Network Simulation (latency + random failures, like the real world)
	if cfg.SimulateLatency {
		r.Use(middleware.Simulation(middleware.SimulationConfig{
			MinLatency:  cfg.MinLatency,
			MaxLatency:  cfg.MaxLatency,
			FailureRate: cfg.FailureRate,
		}))
	}

	// 7. Define Routes
	api.Register(r)

	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
