package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/db"
	"github.com/aimob/aimob-backend/internal/models"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Gerencia o esquema do banco da aimob",
	}

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(dropCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN not set in environment or .env file")
	}
	return db.Connect(dsn)
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Cria/atualiza as tabelas de todas as entidades",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := getDB()
		if err != nil {
			return err
		}
		if err := gdb.AutoMigrate(models.All()...); err != nil {
			return err
		}
		fmt.Println("migração aplicada com sucesso")
		return nil
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Remove todas as tabelas do esquema",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := getDB()
		if err != nil {
			return err
		}
		if err := gdb.Migrator().DropTable(models.All()...); err != nil {
			return err
		}
		fmt.Println("tabelas removidas")
		return nil
	},
}
