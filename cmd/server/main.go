package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	emailPkg "gymverse/internal/adapters/email"
	web "gymverse/internal/adapters/http"
	"gymverse/internal/adapters/storage"
	appointmentStore "gymverse/internal/adapters/storage/appointment"
	authStore "gymverse/internal/adapters/storage/auth"
	memberStore "gymverse/internal/adapters/storage/member"
	offerStore "gymverse/internal/adapters/storage/offer"
	planStore "gymverse/internal/adapters/storage/plan"
	trainerStore "gymverse/internal/adapters/storage/trainer"
	"gymverse/internal/application/orchestrators"
	"gymverse/internal/config"
	"gymverse/internal/domain/credential"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the opened database and wired stores for a CLI command.
// The caller must defer app.Close().
type app struct {
	cfg    *config.Config
	kv     *storage.SQLiteKV
	stores *web.Stores
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &app{
		cfg: cfg,
		kv:  kv,
		stores: &web.Stores{
			KV:               kv,
			PlanStore:        planStore.NewKVStore(kv),
			TrainerStore:     trainerStore.NewKVStore(kv),
			MemberStore:      memberStore.NewKVStore(kv),
			AppointmentStore: appointmentStore.NewKVStore(kv),
			OfferStore:       offerStore.NewKVStore(kv),
			AuthStore:        authStore.NewKVStore(kv),
		},
	}, nil
}

func (a *app) Close() {
	a.kv.Close()
}

// bootstrap runs migration, seeding, and credential setup. It is safe to run
// on every start.
func (a *app) bootstrap(ctx context.Context) error {
	if err := orchestrators.ExecuteMigrateLegacy(ctx, orchestrators.MigrateLegacyDeps{KV: a.kv}); err != nil {
		return fmt.Errorf("migrating legacy data: %w", err)
	}
	seedDeps := orchestrators.SeedDefaultsDeps{
		PlanStore:    a.stores.PlanStore,
		TrainerStore: a.stores.TrainerStore,
		OfferStore:   a.stores.OfferStore,
	}
	if err := orchestrators.ExecuteSeedDefaults(ctx, seedDeps); err != nil {
		return fmt.Errorf("seeding defaults: %w", err)
	}
	credInput := orchestrators.EnsureCredentialsInput{
		User:     a.cfg.Admin.User,
		Password: a.cfg.Admin.Password,
	}
	credDeps := orchestrators.EnsureCredentialsDeps{AuthStore: a.stores.AuthStore}
	if err := orchestrators.ExecuteEnsureCredentials(ctx, credInput, credDeps); err != nil {
		return fmt.Errorf("ensuring credentials: %w", err)
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "gymverse",
	Short: "Gym website and admin panel server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

		if err := a.bootstrap(context.Background()); err != nil {
			return err
		}

		if a.cfg.Email.ResendKey != "" {
			web.SetEmailSender(emailPkg.NewResendSender(a.cfg.Email.ResendKey, a.cfg.Email.From))
			log.Println("Email sender configured (Resend)")
		} else {
			web.SetEmailSender(emailPkg.NewNoopSender())
			if a.cfg.IsProduction() {
				log.Println("WARNING: resend key is not set — email delivery is DISABLED in production")
			} else {
				log.Println("Email sender configured (noop — set GYMVERSE_RESEND_KEY for real delivery)")
			}
		}

		mux := web.NewMux(a.cfg.StaticDir, a.stores)

		log.Printf("GymVerse %s starting on %s (env=%s)", version, a.cfg.Addr, a.cfg.Env)
		return http.ListenAndServe(a.cfg.Addr, mux)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export all data as JSON (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		payload, err := orchestrators.ExecuteExport(cmd.Context(), transferDeps(a))
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return os.WriteFile(args[0], data, 0644)
		}
		fmt.Println(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import data from an export JSON file, replacing all collections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}
		if err := orchestrators.ExecuteImport(cmd.Context(), data, transferDeps(a)); err != nil {
			return err
		}
		fmt.Println("Imported successfully.")
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the admin password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		current, err := promptPassword("Current password: ")
		if err != nil {
			return err
		}
		next, err := promptPassword("New password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm new password: ")
		if err != nil {
			return err
		}

		input := orchestrators.ChangePasswordInput{
			CurrentPassword: current,
			NewPassword:     next,
			ConfirmPassword: confirm,
		}
		deps := orchestrators.ChangePasswordDeps{AuthStore: a.stores.AuthStore}
		if err := orchestrators.ExecuteChangePassword(cmd.Context(), input, deps); err != nil {
			if err == credential.ErrInvalidPassword {
				return fmt.Errorf("current password is incorrect")
			}
			return err
		}
		fmt.Println("Password changed. Any active session has been logged out.")
		return nil
	},
}

func transferDeps(a *app) orchestrators.TransferDeps {
	return orchestrators.TransferDeps{
		PlanStore:        a.stores.PlanStore,
		TrainerStore:     a.stores.TrainerStore,
		MemberStore:      a.stores.MemberStore,
		AppointmentStore: a.stores.AppointmentStore,
		OfferStore:       a.stores.OfferStore,
	}
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "gymverse.toml", "Path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(passwdCmd)
}
