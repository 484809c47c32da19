package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/pngstash/png"
)

func newPrintCommand(newLogger loggerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Print every chunk of a PNG file",
		Args:  cobra.ExactArgs(1),
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
			log.Debug("parsed stream", zap.Int("chunks", len(p.Chunks())), zap.Int("bytes", len(src)))

			critical := color.New(color.FgCyan, color.Bold)

			cmd.Printf("%s: %d chunks, %d bytes\n", args[0], len(p.Chunks()), len(src))

			for _, c := range p.Chunks() {
				name := c.Tag().String()
				kind := "ancillary"
				if c.Tag().IsCritical() {
					name = critical.Sprint(name)
					kind = "critical"
				}

				line := fmt.Sprintf("  %s  %-9s  length=%-6d  crc=0x%08X", name, kind, c.Length(), c.Checksum())
				if text, err := png.ChunkText(c); err == nil && text != "" {
					line += fmt.Sprintf("  %q", text)
				}

				cmd.Println(line)
			}

			return nil
		},
	}
}
