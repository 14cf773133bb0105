package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", os.Getenv("DATABASE_URL"), "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	createOrgCmd.Flags().String("name", "", "Organization display name")
	createOrgCmd.Flags().String("slug", "", "URL-safe slug (lowercase letters, digits, hyphens)")
	createOrgCmd.Flags().String("policy", "ALL_GLOBAL", "Visibility policy: ALL_GLOBAL, CURATED, or PRIVATE_ONLY")
	createOrgCmd.MarkFlagRequired("name")
	createOrgCmd.MarkFlagRequired("slug")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(createOrgCmd)
	rootCmd.AddCommand(setPolicyCmd)
	rootCmd.AddCommand(deactivateOrgCmd)
	rootCmd.AddCommand(listOrgsCmd)
	rootCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "questadmin",
	Short: "questadmin is the platform operator CLI for QuestDeck",
	Long:  `questadmin bootstraps the QuestDeck schema and performs break-glass organization management directly against the database.`,
}

// schema is the authoritative DDL. The visibility_policy enum type and the
// partial unique slug index enforce at the store what the application layer
// validates, and the curation_grants composite primary key makes grants
// idempotent below the application.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS citext`,
	`DO $$ BEGIN
		CREATE TYPE visibility_policy AS ENUM ('ALL_GLOBAL', 'CURATED', 'PRIVATE_ONLY');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS organizations (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		slug text NOT NULL,
		visibility_policy visibility_policy NOT NULL DEFAULT 'ALL_GLOBAL',
		active boolean NOT NULL DEFAULT true,
		branding jsonb,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS organizations_active_slug_idx
		ON organizations (slug) WHERE active`,
	`CREATE TABLE IF NOT EXISTS users (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email citext NOT NULL UNIQUE,
		display_name text NOT NULL,
		organization_id uuid REFERENCES organizations (id),
		is_org_admin boolean NOT NULL DEFAULT false,
		is_superadmin boolean NOT NULL DEFAULT false,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS quests (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		title text NOT NULL,
		description text,
		category text NOT NULL,
		quest_type text NOT NULL DEFAULT 'lesson',
		owning_organization_id uuid REFERENCES organizations (id),
		created_by_id uuid NOT NULL,
		active boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS quests_owning_organization_idx
		ON quests (owning_organization_id)`,
	`CREATE TABLE IF NOT EXISTS curation_grants (
		organization_id uuid NOT NULL REFERENCES organizations (id),
		quest_id uuid NOT NULL REFERENCES quests (id),
		granted_by_id uuid NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (organization_id, quest_id)
	)`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema",
	Long:  `Initialize the organizations, users, quests, and curation_grants tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		for _, stmt := range schema {
			if verbose {
				fmt.Println(stmt)
			}
			if _, err := db.Exec(stmt); err != nil {
				log.Fatalf("Failed to apply schema: %v", err)
			}
		}

		fmt.Println("Schema initialized")
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create-org",
	Short: "Create an organization",
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		slug, _ := cmd.Flags().GetString("slug")
		policy, _ := cmd.Flags().GetString("policy")

		db := mustConnect()
		defer db.Close()

		var id string
		err := db.QueryRow(
			`INSERT INTO organizations (name, slug, visibility_policy) VALUES ($1, $2, $3) RETURNING id`,
			name, slug, policy,
		).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}

		fmt.Printf("Created organization %s (%s)\n", id, slug)
	},
}

var setPolicyCmd = &cobra.Command{
	Use:   "set-policy [org-id] [policy]",
	Short: "Set an organization's visibility policy",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		result, err := db.Exec(
			`UPDATE organizations SET visibility_policy = $2, updated_at = now() WHERE id = $1`,
			args[0], args[1],
		)
		if err != nil {
			log.Fatalf("Failed to update policy: %v", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			log.Fatalf("No organization with id %s", args[0])
		}

		fmt.Printf("Set policy of %s to %s\n", args[0], args[1])
	},
}

var deactivateOrgCmd = &cobra.Command{
	Use:   "deactivate-org [org-id]",
	Short: "Soft-deactivate an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		result, err := db.Exec(
			`UPDATE organizations SET active = false, updated_at = now() WHERE id = $1`,
			args[0],
		)
		if err != nil {
			log.Fatalf("Failed to deactivate organization: %v", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			log.Fatalf("No organization with id %s", args[0])
		}

		fmt.Printf("Deactivated organization %s\n", args[0])
	},
}

var listOrgsCmd = &cobra.Command{
	Use:   "list-orgs",
	Short: "List active organizations",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		rows, err := db.Query(
			`SELECT id, slug, name, visibility_policy FROM organizations WHERE active = true ORDER BY name`,
		)
		if err != nil {
			log.Fatalf("Failed to list organizations: %v", err)
		}
		defer rows.Close()

		for rows.Next() {
			var id, slug, name, policy string
			if err := rows.Scan(&id, &slug, &name, &policy); err != nil {
				log.Fatalf("Failed to scan organization: %v", err)
			}
			fmt.Printf("%s  %-20s %-14s %s\n", id, slug, policy, name)
		}
		if err := rows.Err(); err != nil {
			log.Fatalf("Failed to list organizations: %v", err)
		}
	},
}

var promoteCmd = &cobra.Command{
	Use:   "promote [email]",
	Short: "Grant platform superadmin to a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		result, err := db.Exec(
			`UPDATE users SET is_superadmin = true, updated_at = now() WHERE email = $1`,
			args[0],
		)
		if err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			log.Fatalf("No user with email %s", args[0])
		}

		fmt.Printf("Promoted %s to superadmin\n", args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the questadmin version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("questadmin %s\n", version)
	},
}

func mustConnect() *sql.DB {
	if dbConnString == "" {
		log.Fatal("Database connection string is required")
	}

	db, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
