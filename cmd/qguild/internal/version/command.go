package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/qguild/cmd/qguild/internal"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print qguild version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(internal.FormatVersion())
		},
	}
}
