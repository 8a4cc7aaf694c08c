package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/yield-manager-api/internal/usecases/yielding"
	"github.com/vfg2006/yield-manager-api/pkg/utils"
)

func newStrategiesCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "Lista as estratégias padrão em JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := utils.ParseDate(from, time.Now())
			if err != nil {
				return fmt.Errorf("--from inválido: %w", err)
			}

			out, err := utils.PrettyJson(yielding.DefaultStrategies(ref))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Início da validade das estratégias (YYYY-MM-DD, padrão hoje)")
	return cmd
}
