package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gym-allocator/allocation/domain"
	"gym-allocator/allocation/infra"
	"gym-allocator/server"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	profile := infra.DefaultProfile()
	if cfg.profilePath != "" {
		profile, err = infra.LoadProfile(cfg.profilePath)
		if err != nil {
			log.Fatalf("profile error: %v", err)
		}
	}

	var stats domain.StatsStore
	if cfg.statsRedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.statsRedisAddr,
			Password: cfg.statsRedisPassword,
			DB:       cfg.statsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			log.Fatalf("redis stats ping error: %v", err)
		}

		stats = infra.NewRedisStats(
			rdb,
			infra.WithStatsPrefix(cfg.statsPrefix),
			infra.WithStatsTTL(cfg.statsTTL),
		)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	h := server.Handler(server.Options{Profile: profile, Stats: stats})
	h = server.RunGateMiddleware(server.RunGateOptions{
		Max:     cfg.runsMax,
		Timeout: cfg.runsTimeout,
	})(h)
	h = server.RateLimitMiddleware(server.RateLimitOptions{
		RPS:        cfg.rateRPS,
		Burst:      cfg.rateBurst,
		RetryAfter: cfg.retryAfter,
	})(h)

	mux := http.NewServeMux()
	mux.Handle("/allocate", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	srv := &http.Server{
		Addr:              cfg.listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("allocator listening on %s", cfg.listenAddr)
	log.Printf("profile: slots=%d preferences=%d emailDomain=%q", len(profile.Slots), profile.Preferences, profile.EmailDomain)
	log.Printf("rate: rps=%.3f burst=%d retryAfter=%s", cfg.rateRPS, cfg.rateBurst, cfg.retryAfter)
	log.Printf("runs: max=%d timeout=%s", cfg.runsMax, cfg.runsTimeout)
	log.Printf("stats: enabled=%v redisAddr=%q prefix=%q ttl=%s", cfg.statsRedisAddr != "", cfg.statsRedisAddr, cfg.statsPrefix, cfg.statsTTL)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}

type config struct {
	listenAddr  string
	profilePath string

	rateRPS    float64
	rateBurst  int
	retryAfter time.Duration

	runsMax     int
	runsTimeout time.Duration

	statsRedisAddr     string
	statsRedisPassword string
	statsRedisDB       int
	statsPrefix        string
	statsTTL           time.Duration
}

func readConfig() (config, error) {
	cfg := config{}
	cfg.listenAddr = getenvDefault("LISTEN_ADDR", ":8080")
	cfg.profilePath = os.Getenv("ALLOC_PROFILE")

	cfg.rateRPS = getenvFloatDefault("RATE_RPS", 5)
	cfg.rateBurst = getenvIntDefault("RATE_BURST", 10)
	cfg.retryAfter = getenvDurationDefault("RETRY_AFTER", 1*time.Second)

	cfg.runsMax = getenvIntDefault("RUNS_MAX", 4)
	cfg.runsTimeout = getenvDurationDefault("RUNS_TIMEOUT", 5*time.Second)

	cfg.statsRedisAddr = os.Getenv("STATS_REDIS_ADDR")
	cfg.statsRedisPassword = os.Getenv("STATS_REDIS_PASSWORD")
	cfg.statsRedisDB = getenvIntDefault("STATS_REDIS_DB", 0)
	cfg.statsPrefix = getenvDefault("STATS_PREFIX", "allocator:stats")
	cfg.statsTTL = getenvDurationDefault("STATS_TTL", 30*24*time.Hour)

	if cfg.runsMax < 0 {
		return config{}, errors.New("RUNS_MAX must be >= 0")
	}
	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvFloatDefault(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
