package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"photo-organiser/models"
	"photo-organiser/repository"
)

var sampleDataCmd = &cobra.Command{
	Use:   "sample-data",
	Short: "Create sample data for testing",
	RunE:  runSampleData,
}

func init() {
	rootCmd.AddCommand(sampleDataCmd)
}

func runSampleData(cmd *cobra.Command, args []string) error {
	db, _, err := openDatabase()
	if err != nil {
		return err
	}

	displayName := "John"
	description := "Sample person for testing"
	person := &models.Person{
		Name:        "John Doe",
		DisplayName: &displayName,
		Description: &description,
	}
	if err := repository.NewPersonRepository(db).Create(person); err != nil {
		return err
	}

	log.Printf("Created sample person: %s", person.Name)
	log.Println("Sample data created successfully!")
	return nil
}
