package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// NewRootCmd 构建命令树，未指定子命令时启动 HTTP 服务
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "krushi",
		Short: "KrushiVishwa - farm dashboard backend and soil health analyzer",
		Long: `KrushiVishwa serves the farm dashboard API: soil health analysis,
market and weather overview, the farming assistant chat and page state.

Run without a subcommand to start the HTTP server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./krushi.yaml or ./krushi.json)")

	rootCmd.AddCommand(newServeCmd(), newAnalyzeCmd(), newMigrateCmd())
	return rootCmd
}

// Execute 执行根命令
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
