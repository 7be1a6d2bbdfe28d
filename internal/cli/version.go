package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"honnef.co/go/funnel/internal/build"
)

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Funnel version information",
		Long:  `Print the version information of funnel`,
		Run: func(cmd *cobra.Command, args []string) {
			version(cmd.OutOrStdout())
		},
	}
}

func version(w io.Writer) {
	_, _ = fmt.Fprintf(w, "funnel v%s (Go version: %s)\n", build.Version, runtime.Version())
}
