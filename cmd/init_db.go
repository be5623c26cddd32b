package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"photo-organiser/database"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Initialize the database schema",
	Long: `Create all database tables. With --force, any existing tables are
dropped first, destroying all recorded photo metadata.`,
	RunE: runInitDB,
}

func init() {
	rootCmd.AddCommand(initDBCmd)

	initDBCmd.Flags().Bool("force", false, "Drop existing tables before creating the schema")
}

func runInitDB(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	db, _, err := openDatabase()
	if err != nil {
		return err
	}

	if force {
		log.Println("Dropping existing database tables...")
		if err := database.DropAllTables(db); err != nil {
			return err
		}
	}

	log.Println("Creating database tables...")
	if err := database.AutoMigrateModels(db); err != nil {
		return err
	}

	log.Println("Database initialized successfully!")
	return nil
}
