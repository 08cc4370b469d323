package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	jwttoken "estate/internal/jwt_token"
	listingstore "estate/internal/listing/store"
	"estate/internal/platform/config"
	"estate/internal/platform/logger"
	"estate/internal/platform/postgres"
	"estate/internal/property/service"
	"estate/internal/property/store/binding"
	"estate/internal/property/store/claim"
	"estate/internal/property/store/ledger"
	rolesservice "estate/internal/roles/service"
	rolestore "estate/internal/roles/store"
	id "estate/pkg/domain"
	"estate/pkg/platform/tx"
	"estate/pkg/requestcontext"
)

// =============================================================================
// ROOT
// =============================================================================

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "estatectl",
		Short:         "Operate the estate property-rights service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newTokenCmd(), newRolesCmd(), newClaimsCmd())
	return root
}

// env is what every command that touches the database needs.
type env struct {
	cfg config.Config
	log *slog.Logger
	db  *sql.DB
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Database.URL, MaxOpenConns: 4})
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: logger.New(cfg.Environment, cfg.LogLevel), db: db}, nil
}

// operatorContext marks CLI calls as made by an admin operator so service
// audit lines carry an actor.
func operatorContext(ctx context.Context, operator id.UserID) context.Context {
	ctx = requestcontext.WithUserID(ctx, operator)
	ctx = requestcontext.WithRoles(ctx, []string{requestcontext.RoleAdmin})
	return requestcontext.WithRequestID(ctx, "estatectl-"+time.Now().UTC().Format("20060102T150405"))
}

// =============================================================================
// MIGRATE
// =============================================================================

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()
			if err := postgres.Migrate(cmd.Context(), e.db, e.log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List embedded migrations and whether each is applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()
			migrations, err := postgres.MigrationStatus(cmd.Context(), e.db)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range migrations {
				state := "pending"
				if m.Applied {
					state = "applied " + m.AppliedAt.UTC().Format(time.RFC3339)
				}
				fmt.Fprintf(out, "%03d %s %s\n", m.Version, m.Path, state)
			}
			return nil
		},
	})
	return cmd
}

// =============================================================================
// TOKEN
// =============================================================================

func newTokenCmd() *cobra.Command {
	var (
		userID string
		admin  bool
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.IsProduction() {
				return errors.New("refusing to mint tokens in production")
			}
			user, err := id.ParseUserID(userID)
			if err != nil {
				return err
			}
			var roles []string
			if admin {
				roles = append(roles, requestcontext.RoleAdmin)
			}
			if ttl == 0 {
				ttl = cfg.Auth.TokenTTL
			}
			token, err := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer).
				GenerateAccessToken(user, roles, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id the token is issued to")
	cmd.Flags().BoolVar(&admin, "admin", false, "include the admin role")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// =============================================================================
// ROLES
// =============================================================================

func newRolesCmd() *cobra.Command {
	var operator string
	roles := &cobra.Command{
		Use:   "roles",
		Short: "Inspect and clean up coarse user roles",
	}
	roles.PersistentFlags().StringVar(&operator, "operator", "", "admin user id recorded as the actor")

	withService := func(cmd *cobra.Command, fn func(ctx context.Context, svc *rolesservice.Service) error) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.db.Close()
		ctx := cmd.Context()
		if operator != "" {
			op, err := id.ParseUserID(operator)
			if err != nil {
				return err
			}
			ctx = operatorContext(ctx, op)
		}
		svc := rolesservice.New(rolestore.NewPostgres(e.db), binding.NewPostgres(e.db),
			tx.NewPostgresTx(e.db, e.cfg.TxTimeout), rolesservice.WithLogger(e.log))
		return fn(ctx, svc)
	}

	list := &cobra.Command{
		Use:   "list [user-id]",
		Short: "Show the roles a user holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := id.ParseUserID(args[0])
			if err != nil {
				return err
			}
			return withService(cmd, func(ctx context.Context, svc *rolesservice.Service) error {
				held, err := svc.Roles(ctx, user)
				if err != nil {
					return err
				}
				for _, r := range held {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
				return nil
			})
		},
	}

	strip := &cobra.Command{
		Use:   "strip [user-id] [owner|resident]",
		Short: "Remove a role the user no longer holds any active binding for",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := id.ParseUserID(args[0])
			if err != nil {
				return err
			}
			return withService(cmd, func(ctx context.Context, svc *rolesservice.Service) error {
				if err := svc.StripIfUnbound(ctx, user, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stripped %s from %s\n", args[1], user)
				return nil
			})
		},
	}
	roles.AddCommand(list, strip)
	return roles
}

// =============================================================================
// CLAIMS
// =============================================================================

func newClaimsCmd() *cobra.Command {
	var operatorFlag string
	claims := &cobra.Command{
		Use:   "claims",
		Short: "Claim ledger maintenance",
	}
	verify := &cobra.Command{
		Use:   "verify [claim-id]",
		Short: "Replay a claim's ledger and compare it with the stored status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			claimID, err := id.ParseClaimID(args[0])
			if err != nil {
				return err
			}
			operator, err := id.ParseUserID(operatorFlag)
			if err != nil {
				return err
			}
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.db.Close()

			runner := tx.NewPostgresTx(e.db, e.cfg.TxTimeout)
			bindings := service.NewBindingService(binding.NewPostgres(e.db), listingstore.NewPostgres(e.db),
				rolestore.NewPostgres(e.db), runner, service.WithLogger(e.log))
			svc := service.NewClaimService(claim.NewPostgres(e.db), ledger.NewPostgres(e.db), bindings, runner,
				service.WithLogger(e.log))

			status, err := svc.VerifyHistory(operatorContext(cmd.Context(), operator),
				service.Actor{UserID: operator, Admin: true}, claimID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "claim %s: ledger replays to %s\n", claimID, status)
			return nil
		},
	}
	verify.Flags().StringVar(&operatorFlag, "operator", "", "admin user id recorded as the actor")
	_ = verify.MarkFlagRequired("operator")
	claims.AddCommand(verify)
	return claims
}
