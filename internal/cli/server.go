package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"quest-academy-service/internal/app"
	"quest-academy-service/internal/catalog"
	"quest-academy-service/internal/config"
	"quest-academy-service/internal/infra/memory"
	pgstore "quest-academy-service/internal/infra/postgres"
	redisstore "quest-academy-service/internal/infra/redis"
	"quest-academy-service/internal/leaderboard"
	"quest-academy-service/internal/progress"
	transport "quest-academy-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the activity server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)

	var problems catalog.ProblemRepository
	switch {
	case redisClient != nil && pool != nil:
		problems = redisstore.NewProblemRepository(redisClient, pgstore.NewProblemLoader(pool), catalogTTL)
	case pool != nil:
		problems = memory.NewProblemRepository(pgstore.NewProblemLoader(pool), catalogTTL)
	case redisClient != nil:
		problems = redisstore.NewProblemRepository(redisClient, memory.NewStaticProblemLoader(memory.SeedProblemSets()), catalogTTL)
	default:
		problems = memory.NewProblemRepository(memory.NewStaticProblemLoader(memory.SeedProblemSets()), catalogTTL)
	}
	games := memory.NewGameRepository(memory.SeedGames())

	var snapshots progress.SnapshotRepository = memory.NewProgressRepository()
	if redisClient != nil {
		snapshots = redisstore.NewProgressRepository(redisClient, cfg.Progress.Key)
	}

	var entries leaderboard.EntryLog = memory.NewLeaderboardLog()
	if pool != nil {
		entries = pgstore.NewLeaderboardLog(pool)
	}

	service := app.NewActivityService(
		catalog.NewService(problems, games),
		progress.NewStore(ctx, snapshots),
		leaderboard.NewService(entries),
	)
	wsHandler := transport.NewWSHandler(service)
	apiHandler := transport.NewAPIHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	apiHandler.Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quest academy service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := service.Progress().Flush(shutdownCtx); err != nil {
		log.Printf("failed to flush progress: %v", err)
	}
	return server.Shutdown(shutdownCtx)
}
