package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/pngstash/png"
)

func newRemoveCommand(newLogger loggerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <tag>",
		Short: "Remove the first chunk with the given tag and print its message",
		Long: `Remove the first chunk with the given tag and print its message.

The file on disk is left untouched; the removal happens on the in-memory
copy only.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			p, err := png.Parse(src)
			if err != nil {
				return err
			}

			removed, err := p.RemoveChunk(args[1])
			if err != nil {
				return err
			}
			log.Debug("removed chunk", zap.String("tag", removed.Tag().String()),
				zap.Int("remaining", len(p.Chunks())))

			text, err := png.ChunkText(removed)
			if err != nil {
				return err
			}

			cmd.Println(text)

			return nil
		},
	}
}
