package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

var (
	rootCmd = &cobra.Command{
		Use:   "salon-report",
		Short: "Calcula o painel e a previsão de faturamento do salão pela linha de comando",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(logLevel)
		},
	}

	snapshotFile string
	fromDB       bool
	logLevel     string
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&snapshotFile, "snapshot", "s", "", "arquivo JSON com o snapshot do salão")
	rootCmd.PersistentFlags().BoolVar(&fromDB, "from-db", false, "carrega o snapshot do PostgreSQL configurado")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nível de log")

	rootCmd.AddCommand(newDashboardCmd(), newForecastCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("salon-report falhou")
		os.Exit(1)
	}
}
