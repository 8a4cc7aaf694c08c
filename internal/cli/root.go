// Package cli implementa o yieldctl, utilitário de linha de comando para simular o motor de yield
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCommand monta o comando raiz com todos os subcomandos
func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "yieldctl",
		Short:         "Simula o motor de yield e inspeciona as estratégias padrão",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("nível de log inválido %q: %w", logLevel, err)
			}

			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(level)
			logrus.SetFormatter(&logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: time.RFC3339,
			})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Nível de log (debug, info, warn, error)")

	rootCmd.AddCommand(newSimulateCommand())
	rootCmd.AddCommand(newStrategiesCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute executa o comando raiz
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
