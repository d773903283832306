package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/danielkoh/property-launches/domain"
	httpLayer "github.com/danielkoh/property-launches/http"
	"github.com/danielkoh/property-launches/repository"
	"github.com/danielkoh/property-launches/service"
)

type Config struct {
	Address         string
	RedisAddr       string
	LeadsDBPath     string
	RatesPath       string
	AlternateHost   string
	AlternatePath   string
	RateLimit       int
	RateLimitWindow time.Duration
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg := loadConfig()

	rates := service.DefaultRates()
	if cfg.RatesPath != "" {
		loaded, err := service.LoadRatesFromFile(cfg.RatesPath)
		if err != nil {
			logger.Warn("using default rates", zap.String("path", cfg.RatesPath), zap.Error(err))
		} else {
			rates = loaded
		}
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	leadRepo, err := repository.OpenSQLiteLeadRepository(cfg.LeadsDBPath)
	if err != nil {
		logger.Fatal("failed to open leads database", zap.String("path", cfg.LeadsDBPath), zap.Error(err))
	}
	defer leadRepo.Close()

	calcRepo := repository.NewCalculationRepositoryMemory(1000)

	mortgageService := service.NewMortgageService(logger.Named("mortgage"))
	stampDutyService := service.NewStampDutyService(rates, logger.Named("stampduty"))
	affordabilityService := service.NewAffordabilityService(mortgageService, stampDutyService, rates, logger.Named("affordability"))
	projectionService := service.NewProjectionService(mortgageService, stampDutyService, rates, calcRepo, cache, logger.Named("projection"))
	progressionService := service.NewProgressionService(logger.Named("progression"))

	verifier := service.NewRecaptchaService(logger.Named("recaptcha"))
	notifier := service.NewEmailNotifier(logger.Named("notify"))
	leadService := service.NewLeadService(leadRepo, verifier, notifier, logger.Named("leads"))

	mortgageHandler := httpLayer.NewMortgageHandler(mortgageService)
	stampDutyHandler := httpLayer.NewStampDutyHandler(stampDutyService)
	affordabilityHandler := httpLayer.NewAffordabilityHandler(affordabilityService)
	projectionHandler := httpLayer.NewProjectionHandler(projectionService, logger.Named("http"))
	progressionHandler := httpLayer.NewProgressionHandler(progressionService)
	leadHandler := httpLayer.NewLeadHandler(leadService)

	mainProject := httpLayer.NewProjectHandler(domain.ProjectInfo{
		Name:        "The Orchard Collection",
		Developer:   "Koh Developments",
		District:    "D21 Upper Bukit Timah",
		TotalUnits:  620,
		ExpectedTop: "2028-01",
		Tagline:     "Freehold living at the edge of the nature reserve",
	})
	alternateProject := httpLayer.NewProjectHandler(domain.ProjectInfo{
		Name:        "Pinery Residences",
		Developer:   "Koh Developments",
		District:    "D19 Serangoon",
		TotalUnits:  480,
		ExpectedTop: "2028-06",
		Tagline:     "Executive condominium beside the park connector",
	})

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	limited := func(h http.HandlerFunc) http.Handler {
		return httpLayer.RateLimitMiddleware(rateLimiter, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpLayer.HealthHandler)
	mux.HandleFunc("/", mainProject.ProjectInfo)
	mux.HandleFunc(cfg.AlternatePath, alternateProject.ProjectInfo)

	mux.Handle("/calc/mortgage", limited(mortgageHandler.EstimateMortgage))
	mux.Handle("/calc/stamp-duty", limited(stampDutyHandler.CalculateStampDuty))
	mux.Handle("/calc/required-income", limited(affordabilityHandler.RequiredIncome))
	mux.Handle("/calc/max-loan", limited(affordabilityHandler.MaxLoan))
	mux.Handle("/calc/ec-viability", limited(affordabilityHandler.EcViability))
	mux.Handle("/calc/roi/new-launch", limited(projectionHandler.NewLaunchRoi))
	mux.Handle("/calc/roi/resale", limited(projectionHandler.ResaleRoi))
	mux.Handle("/calc/progression", limited(progressionHandler.BuildSchedule))
	mux.Handle("/leads", limited(leadHandler.SubmitLead))

	handler := httpLayer.HostRewriteMiddleware(cfg.AlternateHost, cfg.AlternatePath, mux)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("address", cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func loadConfig() Config {
	return Config{
		Address:         getEnv("API_ADDRESS", ":8080"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		LeadsDBPath:     getEnv("LEADS_DB_PATH", "leads.db"),
		RatesPath:       getEnv("RATES_PATH", ""),
		AlternateHost:   getEnv("ALTERNATE_HOST", "pinery-residences"),
		AlternatePath:   getEnv("ALTERNATE_PATH", "/pinery"),
		RateLimit:       30,
		RateLimitWindow: time.Minute,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
