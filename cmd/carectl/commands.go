package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/carecompanion-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carecompanion-backend/internal/app"
	"github.com/heartmarshall/carecompanion-backend/internal/auth"
	"github.com/heartmarshall/carecompanion-backend/internal/geofence"
	"github.com/heartmarshall/carecompanion-backend/internal/intent"
	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carectl",
		Short:         "Operator tool for the carecompanion service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newResolveTimeCmd())
	root.AddCommand(newDistanceCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newTokenCmd())
	return root
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [utterance]",
		Short: "Classify an utterance the way the voice endpoint does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := intent.Classify(strings.Join(args, " "))

			out := struct {
				Type       string            `json:"type"`
				Action     string            `json:"action"`
				Parameters map[string]string `json:"parameters"`
			}{in.Type.String(), in.Action, in.Parameters}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func newResolveTimeCmd() *cobra.Command {
	var (
		nowFlag string
		tzFlag  string
	)

	cmd := &cobra.Command{
		Use:   "resolve-time [phrase]",
		Short: "Resolve a reminder time phrase such as \"30 minutes\" or \"2:30 pm\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := ctxutil.ParseTimezone(tzFlag)

			now := time.Now().In(loc)
			if nowFlag != "" {
				var err error
				now, err = time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				now = now.In(loc)
			}

			at, ok := intent.ResolveTime(strings.Join(args, " "), now)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (unrecognized, defaulted to now)\n", at.Format(time.RFC3339))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), at.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "reference instant in RFC 3339 (default: current time)")
	cmd.Flags().StringVar(&tzFlag, "tz", "UTC", "IANA timezone for clock phrases, unknown names fall back to UTC")
	return cmd
}

func newDistanceCmd() *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "distance LAT1 LON1 LAT2 LON2",
		Short: "Haversine distance in meters between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c [4]float64
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				c[i] = v
			}

			d := geofence.Distance(c[0], c[1], c[2], c[3])
			fmt.Fprintf(cmd.OutOrStdout(), "%.1f m\n", d)
			if radius > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "inside %.0f m zone: %t\n", radius, d <= radius)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 0, "treat the first point as a zone center with this radius")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				return errors.New("database DSN required: set --dsn or DATABASE_DSN")
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN")

	open := func(cmd *cobra.Command) (*postgres.Migrator, error) {
		return postgres.NewMigrator(cmd.Context(), dsn)
	}

	printVersions := func(cmd *cobra.Command, verb string, versions []int64) {
		if len(versions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to do")
			return
		}
		for _, v := range versions {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %05d\n", verb, v)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := open(cmd)
			if err != nil {
				return err
			}
			defer m.Close()

			versions, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			printVersions(cmd, "applied", versions)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := open(cmd)
			if err != nil {
				return err
			}
			defer m.Close()

			versions, err := m.Down(cmd.Context())
			if err != nil {
				return err
			}
			printVersions(cmd, "rolled back", versions)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := open(cmd)
			if err != nil {
				return err
			}
			defer m.Close()

			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(tw, "%05d\t%s\t%s\n", s.Version, state, s.Source)
			}
			return tw.Flush()
		},
	})

	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		userID   string
		role     string
		ttl      time.Duration
		secret   string
		issuer   string
		audience string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return errors.New("signing secret required: set --secret or AUTH_JWT_SECRET")
			}

			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("--user: %w", err)
				}
				id = parsed
			}

			token, err := auth.NewJWTManager(secret, issuer, audience).GenerateToken(id, role, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "user:", id)
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "subject user id (default: random)")
	cmd.Flags().StringVar(&role, "role", "authenticated", "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("AUTH_JWT_SECRET"), "HS256 signing secret")
	cmd.Flags().StringVar(&issuer, "issuer", os.Getenv("AUTH_JWT_ISSUER"), "issuer claim")
	cmd.Flags().StringVar(&audience, "audience", envOr("AUTH_JWT_AUDIENCE", "authenticated"), "audience claim")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
