package main

import (
	"fmt"
	"image/gif"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"trainreel/internal/services"
	"trainreel/recording"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered episode recordings in assembly order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if folder == "" {
				folder = cfg.Paths.RecordingsDir
			}

			files, err := recording.Discover(folder)
			if err != nil {
				if services.IsNotFound(err) {
					fmt.Fprintf(cmd.OutOrStdout(), "No recordings found in %s\n", folder)
					return nil
				}
				return err
			}

			rows := make([][]string, 0, len(files))
			for _, f := range files {
				rows = append(rows, []string{
					f.Name,
					strconv.Itoa(f.SortKey),
					f.Label,
					frameCount(f.Path),
					fileSize(f.Path),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"File", "Sort Key", "Label", "Frames", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Recordings folder (default from config)")
	return cmd
}

// frameCount opens the recording just far enough to count frames; unreadable
// files show a dash rather than failing the listing.
func frameCount(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "-"
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		return "-"
	}
	return strconv.Itoa(len(g.Image))
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "-"
	}
	return formatBytes(info.Size())
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
