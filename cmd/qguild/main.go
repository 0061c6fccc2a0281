package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/qguild/cmd/qguild/internal"
	"github.com/tinyland-inc/qguild/cmd/qguild/internal/chat"
	"github.com/tinyland-inc/qguild/cmd/qguild/internal/send"
	"github.com/tinyland-inc/qguild/cmd/qguild/internal/version"
)

func NewQguildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "qguild",
		Short:   fmt.Sprintf("qguild v%s - guild open API message sender", internal.GetVersion()),
		Example: `  qguild send --channel 123456 --content "hello"`,
	}

	cmd.AddCommand(
		send.NewSendCommand(),
		chat.NewChatCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	cmd := NewQguildCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
