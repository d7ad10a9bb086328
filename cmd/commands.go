package main

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aalug/hiring-analytics-go/internal/api"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/pkg/token"
	"github.com/aalug/hiring-analytics-go/pkg/validation"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// === database ===
			conn, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			store := db.NewStore(conn)

			// === HTTP server ===
			server, err := api.NewServer(cfg, store)
			if err != nil {
				return fmt.Errorf("cannot create server: %w", err)
			}

			return server.Start(cfg.ServerAddress)
		},
	}
}

func migrateCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			m, err := migrate.New(cfg.MigrationURL, cfg.DBSource)
			if err != nil {
				return fmt.Errorf("cannot create migrate instance: %w", err)
			}
			defer m.Close()

			switch args[0] {
			case "up":
				err = m.Up()
			case "down":
				if steps <= 0 {
					steps = 1
				}
				err = m.Steps(-steps)
			}
			if errors.Is(err, migrate.ErrNoChange) {
				log.Info().Str("direction", args[0]).Msg("no migrations to apply")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}

			log.Info().Str("direction", args[0]).Msg("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func seedCommand() *cobra.Command {
	opts := db.DefaultSeedOptions()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with random demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			conn, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			stats, err := db.NewSQLStore(conn).LoadTestData(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("cannot load demo data: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"employers=%d jobs=%d candidates=%d applications=%d views=%d skill_scores=%d courses=%d completions=%d\n",
				stats.Employers, stats.Jobs, stats.Candidates, stats.Applications,
				stats.Views, stats.SkillScores, stats.Courses, stats.Completions)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Employers, "employers", opts.Employers, "number of employers")
	cmd.Flags().IntVar(&opts.JobsPerEmployer, "jobs", opts.JobsPerEmployer, "jobs per employer")
	cmd.Flags().IntVar(&opts.Candidates, "candidates", opts.Candidates, "number of candidates")
	cmd.Flags().IntVar(&opts.ApplicationsPerJob, "applications", opts.ApplicationsPerJob, "maximum applications per job")
	cmd.Flags().IntVar(&opts.ViewsPerApplication, "views", opts.ViewsPerApplication, "views per application")
	return cmd
}

func tokenCommand() *cobra.Command {
	var (
		employerID int64
		email      string
		duration   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed bearer token for an existing employer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if employerID < 1 {
				return errors.New("--employer-id must be a positive number")
			}
			if email != "" {
				if err := validation.ValidateEmail(email); err != nil {
					return err
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			conn, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			employer, err := db.NewStore(conn).GetEmployer(cmd.Context(), db.EmployerID(employerID))
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("employer %d not found", employerID)
			}
			if err != nil {
				return fmt.Errorf("cannot get employer: %w", err)
			}
			if email == "" {
				email = employer.Email
			}
			if duration <= 0 {
				duration = cfg.AccessTokenDuration
			}

			maker, err := token.NewJWTMaker(cfg.TokenSymmetricKey)
			if err != nil {
				return fmt.Errorf("cannot create token maker: %w", err)
			}

			accessToken, err := maker.CreateToken(employerID, email, duration)
			if err != nil {
				return fmt.Errorf("cannot create token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), accessToken)
			return nil
		},
	}
	cmd.Flags().Int64Var(&employerID, "employer-id", 0, "employer the token identifies")
	cmd.Flags().StringVar(&email, "email", "", "email carried by the token (defaults to the employer's email)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime (defaults to ACCESS_TOKEN_DURATION)")
	return cmd
}
