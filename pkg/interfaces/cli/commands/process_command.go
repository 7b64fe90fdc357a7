// Package commands defines the command-line surface.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/averin/bomsheet/pkg/application/services"
	"github.com/averin/bomsheet/pkg/config"
)

// NewRootCommand builds the bomsheet command. It processes every
// specification workbook found in the given directory (the current directory
// by default) and writes a reformatted workbook and a log file next to each.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "bomsheet [dir]",
		Short: "Reformat engineering specification workbooks",
		Long: "bomsheet reads specification workbooks with dotted position numbers, " +
			"rebuilds the assembly tree, totals each part's quantity per device and " +
			"writes a workbook with a relative and an absolute specification sheet.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			service := services.NewSpecService(cfg, verbose)
			return service.ProcessDir(cmd.Context(), dir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config overriding the sheet conventions")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	return cmd
}
