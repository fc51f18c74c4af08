package main

import (
	"context"
	"errors"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"gym-allocator/allocation"
	"gym-allocator/allocation/application"
	"gym-allocator/allocation/domain"
	"gym-allocator/allocation/infra"

	"github.com/google/uuid"
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

	in, err := os.Open(cfg.inputPath)
	if err != nil {
		log.Fatalf("input error: %v", err)
	}
	defer func() { _ = in.Close() }()

	// escreve num .tmp e renomeia no final: ou o artefato sai completo, ou não sai
	tmpPath := cfg.outputPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		log.Fatalf("output error: %v", err)
	}

	svc := application.Service{
		Table:       infra.NewTable(profile.Slots),
		Preferences: application.PreferenceColumns(profile.Preferences),
		Validator:   infra.EmailDomain(profile.EmailDomain),
	}

	runID := uuid.NewString()
	var opts []allocation.Option
	if stats != nil {
		opts = append(opts, allocation.WithStats(stats, runID))
	}

	sum, err := allocation.Annotate(context.Background(), in, out, svc, opts...)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(tmpPath)
		log.Fatalf("allocation error: %v", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmpPath)
		log.Fatalf("output close error: %v", err)
	}
	if err := os.Rename(tmpPath, cfg.outputPath); err != nil {
		_ = os.Remove(tmpPath)
		log.Fatalf("output finalize error: %v", err)
	}

	log.Printf("run %s: %d applicants, %s -> %s", runID, sum.Rows, cfg.inputPath, cfg.outputPath)
	for _, line := range summaryLines(sum) {
		log.Print(line)
	}
}

// summaryLines formata o resumo em ordem estável de rótulo.
func summaryLines(sum allocation.Summary) []string {
	labels := make([]string, 0, len(sum.Outcomes))
	for o := range sum.Outcomes {
		labels = append(labels, string(o))
	}
	sort.Strings(labels)

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		lines = append(lines, "  "+label+": "+strconv.Itoa(sum.Outcomes[domain.Outcome(label)]))
	}
	return lines
}

type config struct {
	inputPath   string
	outputPath  string
	profilePath string

	statsRedisAddr     string
	statsRedisPassword string
	statsRedisDB       int
	statsPrefix        string
	statsTTL           time.Duration
}

func readConfig() (config, error) {
	cfg := config{}
	cfg.inputPath = os.Getenv("INPUT_CSV")
	cfg.outputPath = os.Getenv("OUTPUT_CSV")
	cfg.profilePath = os.Getenv("ALLOC_PROFILE")

	cfg.statsRedisAddr = os.Getenv("STATS_REDIS_ADDR")
	cfg.statsRedisPassword = os.Getenv("STATS_REDIS_PASSWORD")
	cfg.statsRedisDB = getenvIntDefault("STATS_REDIS_DB", 0)
	cfg.statsPrefix = getenvDefault("STATS_PREFIX", "allocator:stats")
	cfg.statsTTL = getenvDurationDefault("STATS_TTL", 30*24*time.Hour)

	if cfg.inputPath == "" {
		return config{}, errors.New("INPUT_CSV is required")
	}
	if cfg.outputPath == "" {
		return config{}, errors.New("OUTPUT_CSV is required")
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
