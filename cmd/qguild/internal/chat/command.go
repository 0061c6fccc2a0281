package chat

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/tinyland-inc/qguild/cmd/qguild/internal"
	"github.com/tinyland-inc/qguild/pkg/logger"
	"github.com/tinyland-inc/qguild/pkg/message"
)

func NewChatCommand() *cobra.Command {
	var (
		configPath string
		channelID  string
		dmID       string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactively send messages to one destination",
		Example: `  qguild chat --channel 123456
  qguild chat --dm 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebug(debug)

			var id string
			var narrow func(*message.Sender) *message.Sender
			switch {
			case channelID != "" && dmID != "":
				return errors.New("--channel and --dm are mutually exclusive")
			case channelID != "":
				id = channelID
				narrow = (*message.Sender).Channel
			case dmID != "":
				id = dmID
				narrow = (*message.Sender).Private
			default:
				return errors.New("one of --channel or --dm is required")
			}

			cfg, err := internal.ResolveConfig(configPath)
			if err != nil {
				return err
			}
			sender := narrow(internal.NewSender(cfg))

			rl, err := readline.New("> ")
			if err != nil {
				return fmt.Errorf("starting readline: %w", err)
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}

				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}

				msgs, err := sender.Send(cmd.Context(), message.ID(id), message.Text(line))
				if err != nil {
					logger.ErrorCF("cli", "Send failed", map[string]any{
						"error": err.Error(),
					})
					continue
				}
				fmt.Printf("sent %s\n", msgs[0].ID)
			}
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.qguild/config.json)")
	cmd.Flags().StringVar(&channelID, "channel", "", "Channel ID to chat into")
	cmd.Flags().StringVar(&dmID, "dm", "", "DM session ID to chat into")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}
