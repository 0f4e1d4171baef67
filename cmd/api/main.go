// @title Pet Exercise Tracker API
// @version 1.0
// @description Perfiles de mascotas, registro de ejercicio y ánimo, calendario, estadísticas, reportes y links compartidos.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"

	"pet-exercise-tracker/internal/adapters/storage"
	"pet-exercise-tracker/internal/platform/config"
	"pet-exercise-tracker/internal/platform/logger"
	"pet-exercise-tracker/internal/router"

	"github.com/spf13/cobra"
)

var (
	configPath string

	cfg config.Config
	log logger.Logger = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "pettrack",
	Short: "Pet exercise tracker: API HTTP y herramientas de datos",
	Long: `pettrack registra ejercicio y ánimo de mascotas.

Sin subcomando levanta la API (igual que "pettrack serve").
La configuración sale de config.yaml (o --config) y variables PETTRACK_*.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.App.Name,
			Output: os.Stderr,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "ruta a config.yaml (opcional)")

	rootCmd.AddCommand(serveCmd, importCmd, exportCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openServices abre el storage configurado y arma los services.
// El caller debe llamar a repos.Close.
func openServices(ctx context.Context) (*router.Services, storage.Repos, error) {
	repos, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		return nil, storage.Repos{}, err
	}
	return router.NewServices(repos, cfg.Auth.SessionTTL), repos, nil
}
