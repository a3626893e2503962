package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ormbridge/internal/adapters/config"
	"go.trai.ch/ormbridge/internal/app"
	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [units...]",
		Short: "Resolve provider settings for persistence units",
		Long: "Resolve the provider settings and second level cache decision of every persistence unit " +
			"in a deployment descriptor. Units may be selected by name or scoped name.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			out, _ := cmd.Flags().GetString("output")
			verbose, _ := cmd.Flags().GetBool("verbose")

			format, err := domain.ParseOutputFormat(out)
			if err != nil {
				return zerr.With(err, "output", out)
			}

			return c.app.Run(cmd.Context(), file, app.RunOptions{
				Units:   args,
				Format:  format,
				Verbose: verbose,
			})
		},
	}
	cmd.Flags().StringP("file", "f", config.DefaultFilename, "Path to the deployment descriptor or its directory")
	cmd.Flags().StringP("output", "o", string(domain.OutputText), "Output format: text, json or yaml")
	return cmd
}
