package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/JuliPapp/Redimfinal-sub000/internal/api"
	"github.com/JuliPapp/Redimfinal-sub000/internal/content"
	"github.com/JuliPapp/Redimfinal-sub000/internal/database"
	"github.com/JuliPapp/Redimfinal-sub000/internal/logging"
	"github.com/JuliPapp/Redimfinal-sub000/internal/repository"
	"github.com/JuliPapp/Redimfinal-sub000/internal/service"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/cleanup"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/config"
	jwtservice "github.com/JuliPapp/Redimfinal-sub000/pkg/jwt_service"
)

const migrateTimeout = time.Minute

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "discipleship",
		Short:         "Discipleship accompaniment API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			cfg := config.New()
			logging.Setup(os.Stdout, cfg.GetStringOr("LOG_LEVEL", "info"), cfg.GetStringOr("LOG_FORMAT", "text"))
		},
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newContentCmd())
	return root
}

func pgConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
}

func newServeCmd() *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			defer cleanup.CleanUp()
			return serve(ctx, config.New(), skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "don't apply pending migrations on start")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, skipMigrations bool) error {
	if err := content.Default.Validate(); err != nil {
		return fmt.Errorf("content corpus: %w", err)
	}
	dbCfg := pgConfig(cfg)
	if !skipMigrations {
		migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
		err := database.Migrate(migrateCtx, dbCfg.ConnString())
		cancel()
		if err != nil {
			return err
		}
		slog.Info("migrations applied")
	}
	service.InitValidator()

	pool := repository.Connect(dbCfg)
	usersRepo := repository.NewUsersRepo(pool)
	pairingsRepo := repository.NewPairingsRepo(pool)
	checkinsRepo := repository.NewCheckinsRepo(pool)

	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo),
		PairingsService: service.NewPairingsService(usersRepo, pairingsRepo, checkinsRepo),
		CheckinsService: service.NewCheckinsService(checkinsRepo),
		AnalysesService: service.NewAnalysesService(repository.NewAnalysesRepo(pool), checkinsRepo, content.Default),
		SchedulingService: service.NewSchedulingService(
			repository.NewSlotsRepo(pool),
			repository.NewMeetingsRepo(pool),
			pairingsRepo,
		),
		PreferencesService: service.NewPreferencesService(repository.NewPreferencesRepo(pool)),
		JwtService:         jwtservice.New(secret, cfg.GetDuration("TOKEN_TTL", time.Hour)),
		CORSOrigin:         cfg.GetString("CORS_ORIGIN"),
	})
	return serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
}

func newMigrateCmd() *cobra.Command {
	migrate := &cobra.Command{Use: "migrate", Short: "Manage the database schema"}
	run := func(f func(context.Context, *sql.DB) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()
			db, err := database.Open(ctx, pgConfig(config.New()).ConnString())
			if err != nil {
				return err
			}
			defer db.Close()
			return f(ctx, db)
		}
	}
	migrate.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply every pending migration", RunE: run(database.Up)},
		&cobra.Command{Use: "down", Short: "Roll back the latest migration", RunE: run(database.Down)},
		&cobra.Command{Use: "status", Short: "Print the state of every migration", RunE: run(database.Status)},
	)
	return migrate
}

func newContentCmd() *cobra.Command {
	contentCmd := &cobra.Command{Use: "content", Short: "Inspect the built-in content corpus"}
	contentCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check that every corpus entry is tagged with known roots and categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := content.Default.Validate(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "corpus ok: %d scriptures, %d prayers, %d actions\n",
				len(content.Default.Scriptures), len(content.Default.Prayers), len(content.Default.Actions))
			return err
		},
	})
	return contentCmd
}
