package main

import (
	"fmt"
	"log"

	"github.com/mailcow-tools/scim-bridge/pkg/app"
	"github.com/mailcow-tools/scim-bridge/pkg/config"
	"github.com/mailcow-tools/scim-bridge/pkg/version"
	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:           "scim-bridge [flags]",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scim-bridge %s\n", version.GetInfo().Version)
	},
}

var cmdRun = &cobra.Command{
	Use:   "run [args]",
	Short: "Start SCIM bridge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return start(flagConfigPath)
	},
}

// nolint: gochecknoinits
func init() {
	cmdRun.Flags().StringVarP(&flagConfigPath, "config", "c", "", "config path")
	rootCmd.AddCommand(cmdRun)
}

func main() {
	rootCmd.AddCommand(
		versionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}

func start(cfgPath string) error {
	cfg, err := config.NewConfig(cfgPath)
	if err != nil {
		return err
	}

	srv, err := app.NewSCIMServer(cfg)
	if err != nil {
		return err
	}

	return srv.Run()
}
