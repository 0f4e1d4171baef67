package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pet-exercise-tracker/internal/domain/backup"
	"pet-exercise-tracker/internal/domain/users"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dataFile   string
	dataEmail  string
	dataUserID string
	dataOut    string
	dataFormat string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Importa un respaldo JSON/YAML (formato nuevo o legacy) para un usuario",
	Example: `  pettrack import --file backup.json --email ana@example.com
  pettrack import --file old-export.yaml --user-id 6c1f...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svcs, repos, err := openServices(ctx)
		if err != nil {
			return err
		}
		defer repos.Close()

		ownerID, err := resolveOwner(cmd, svcs.Users)
		if err != nil {
			return err
		}

		var payload []byte
		if dataFile == "-" {
			payload, err = io.ReadAll(io.LimitReader(cmd.InOrStdin(), backup.MaxImportBytes+1))
		} else {
			payload, err = os.ReadFile(dataFile)
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", dataFile, err)
		}
		if len(payload) > backup.MaxImportBytes {
			return fmt.Errorf("import file larger than %d bytes", backup.MaxImportBytes)
		}

		res, err := svcs.Backup.Import(ctx, ownerID, payload)
		if err != nil {
			return err
		}

		log.Info("import finished", map[string]any{
			"owner":     ownerID,
			"pets":      res.Pets,
			"exercises": res.Exercises,
			"moods":     res.Moods,
			"skipped":   res.Skipped,
		})
		for _, msg := range res.Errors {
			log.Warn("import skipped item", map[string]any{"reason": msg})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta todas las mascotas de un usuario con sus ejercicios y ánimos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format := strings.ToLower(strings.TrimSpace(dataFormat))
		if format != "json" && format != "yaml" {
			return errors.New("--format must be json or yaml")
		}

		svcs, repos, err := openServices(ctx)
		if err != nil {
			return err
		}
		defer repos.Close()

		ownerID, err := resolveOwner(cmd, svcs.Users)
		if err != nil {
			return err
		}

		records, err := svcs.Backup.Export(ctx, ownerID)
		if err != nil {
			return err
		}

		var body []byte
		if format == "yaml" {
			body, err = yaml.Marshal(records)
		} else {
			body, err = json.MarshalIndent(records, "", "  ")
		}
		if err != nil {
			return err
		}

		if err := writeOutput(cmd, dataOut, body); err != nil {
			return err
		}
		log.Info("export finished", map[string]any{"owner": ownerID, "pets": len(records)})
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{importCmd, exportCmd} {
		c.Flags().StringVar(&dataEmail, "email", "", "email del usuario dueño")
		c.Flags().StringVar(&dataUserID, "user-id", "", "id del usuario dueño (alternativa a --email)")
		c.MarkFlagsMutuallyExclusive("email", "user-id")
		c.MarkFlagsOneRequired("email", "user-id")
	}

	importCmd.Flags().StringVarP(&dataFile, "file", "f", "", `archivo a importar ("-" = stdin)`)
	_ = importCmd.MarkFlagRequired("file")

	exportCmd.Flags().StringVarP(&dataOut, "out", "o", "-", `archivo destino ("-" = stdout)`)
	exportCmd.Flags().StringVar(&dataFormat, "format", "json", "json | yaml")
}

func resolveOwner(cmd *cobra.Command, svc *users.Service) (string, error) {
	if id := strings.TrimSpace(dataUserID); id != "" {
		return id, nil
	}
	u, err := svc.GetByEmail(cmd.Context(), dataEmail)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", fmt.Errorf("no user with email %q", dataEmail)
		}
		return "", err
	}
	return u.ID, nil
}

func writeOutput(cmd *cobra.Command, path string, body []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(body)
		return err
	}
	return os.WriteFile(path, body, 0o644)
}
