package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/pngstash/png"
)

func newDecodeCommand(newLogger loggerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file> <tag>",
		Short: "Print the message carried by the first chunk with the given tag",
		Args:  cobra.ExactArgs(2),
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
			log.Debug("parsed stream", zap.Int("chunks", len(p.Chunks())))

			c := p.ChunkByType(args[1])
			if c == nil {
				cmd.Println("That chunk doesn't exist")

				return nil
			}

			text, err := png.ChunkText(c)
			if err != nil {
				return err
			}

			cmd.Println(text)

			return nil
		},
	}
}
