package send

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/qguild/cmd/qguild/internal"
	"github.com/tinyland-inc/qguild/pkg/logger"
	"github.com/tinyland-inc/qguild/pkg/message"
)

func NewSendCommand() *cobra.Command {
	var (
		configPath string
		channelIDs []string
		dmIDs      []string
		content    string
		markdown   string
		imageURL   string
		imageFile  string
		replyTo    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to channels or DM sessions",
		Example: `  qguild send --channel 123456 --content "hello"
  qguild send --channel 123,456,789 --image-file ./chart.png
  qguild send --dm 42 --reply-to 08acd... --content "got it"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebug(debug)

			if len(channelIDs) == 0 && len(dmIDs) == 0 {
				return errors.New("at least one of --channel or --dm is required")
			}
			if content == "" && markdown == "" && imageURL == "" && imageFile == "" {
				return errors.New("nothing to send: set --content, --markdown, --image or --image-file")
			}

			cfg, err := internal.ResolveConfig(configPath)
			if err != nil {
				return err
			}

			req := &message.MessageRequest{
				Content: content,
				Image:   imageURL,
				MsgID:   replyTo,
			}
			if markdown != "" {
				req.Markdown = message.MarkdownText(markdown)
			}
			if imageFile != "" {
				f, err := os.Open(imageFile)
				if err != nil {
					return fmt.Errorf("opening image: %w", err)
				}
				defer f.Close()
				req.FileImage = f
			}

			targets := buildTargets(channelIDs, dmIDs)
			results := internal.NewSender(cfg).SendEach(cmd.Context(), targets, req)

			var failed int
			for _, res := range results {
				if res.Err != nil {
					failed++
					logger.ErrorCF("cli", "Delivery failed", map[string]any{
						"error": res.Err.Error(),
					})
					continue
				}
				for _, msg := range res.Messages {
					fmt.Printf("sent %s\n", msg.ID)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d targets failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default ~/.qguild/config.json)")
	cmd.Flags().StringSliceVar(&channelIDs, "channel", nil, "Channel ID to send to (repeatable)")
	cmd.Flags().StringSliceVar(&dmIDs, "dm", nil, "DM session ID to send to (repeatable)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Plain text content")
	cmd.Flags().StringVar(&markdown, "markdown", "", "Raw markdown content")
	cmd.Flags().StringVar(&imageURL, "image", "", "Image URL to attach")
	cmd.Flags().StringVar(&imageFile, "image-file", "", "Local image file to upload")
	cmd.Flags().StringVar(&replyTo, "reply-to", "", "Message ID to reply to")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

// buildTargets groups the flag values into one target per category, so
// several IDs of the same kind fan out as one identifier-list dispatch.
func buildTargets(channelIDs, dmIDs []string) []message.TargetInput {
	var targets []message.TargetInput
	if len(channelIDs) == 1 {
		targets = append(targets, message.Target{Category: message.CategoryChannel, ID: channelIDs[0]})
	} else if len(channelIDs) > 1 {
		targets = append(targets, message.Target{Category: message.CategoryChannel, IDs: channelIDs})
	}
	if len(dmIDs) == 1 {
		targets = append(targets, message.Target{Category: message.CategoryPrivate, ID: dmIDs[0]})
	} else if len(dmIDs) > 1 {
		targets = append(targets, message.Target{Category: message.CategoryPrivate, IDs: dmIDs})
	}
	return targets
}
