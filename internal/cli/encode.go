package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/pngstash/chunk"
	"github.com/arloliu/pngstash/png"
)

func newEncodeCommand(newLogger loggerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <file> <tag> <message> [output]",
		Short: "Append a chunk carrying a message",
		Long: `Append a chunk carrying a message under the given 4-letter tag.

The rewritten stream is saved to the output file when one is given; without
an output file the mutation is validated and discarded.`,
		Args: cobra.RangeArgs(3, 4),
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
			log.Debug("loaded file", zap.String("path", args[0]), zap.Int("bytes", len(src)))

			p, err := png.Parse(src)
			if err != nil {
				return err
			}

			tag, err := chunk.TagFromString(args[1])
			if err != nil {
				return err
			}

			p.AppendChunk(chunk.New(tag, []byte(args[2])))
			log.Debug("appended chunk", zap.String("tag", tag.String()), zap.Int("payload", len(args[2])))

			if len(args) == 4 {
				out := p.Bytes()
				if err := os.WriteFile(args[3], out, 0o644); err != nil {
					return err
				}
				log.Debug("wrote file", zap.String("path", args[3]), zap.Int("bytes", len(out)))
			}

			return nil
		},
	}
}
