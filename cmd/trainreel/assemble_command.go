package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"trainreel/internal/services"
	"trainreel/video"
)

func newAssembleCommand(ctx *commandContext) *cobra.Command {
	var folder string
	var output string
	var fps int
	var resizeWidth int
	var ffmpegBinary string

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Concatenate recorded episode GIFs into one summary video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			if folder == "" {
				folder = cfg.Paths.RecordingsDir
			}
			if output == "" {
				output = cfg.Paths.OutputFile
			}
			if fps == 0 {
				fps = cfg.Video.FPS
			}
			if resizeWidth == 0 {
				resizeWidth = cfg.Video.ResizeWidth
			}
			if ffmpegBinary == "" {
				ffmpegBinary = cfg.Video.FFmpegBinary
			}

			opts := video.Options{
				FPS:          fps,
				ResizeWidth:  resizeWidth,
				FontScale:    cfg.Banner.FontScale,
				Thickness:    cfg.Banner.Thickness,
				FFmpegBinary: ffmpegBinary,
				Logger:       logger,
			}

			var bar *progressbar.ProgressBar
			if isatty.IsTerminal(os.Stderr.Fd()) {
				opts.OnProgress = func(done, total int) {
					if bar == nil {
						bar = progressbar.NewOptions(total,
							progressbar.OptionSetDescription("annotating recordings"),
							progressbar.OptionSetWriter(os.Stderr),
							progressbar.OptionClearOnFinish(),
						)
					}
					_ = bar.Set(done)
				}
			}

			path, err := video.NewAssembler(opts).Assemble(cmd.Context(), folder, output)
			if err != nil {
				if services.IsNotFound(err) {
					return fmt.Errorf("nothing to assemble: %w", err)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote summary video to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Recordings folder (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output video path (default from config)")
	cmd.Flags().IntVar(&fps, "fps", 0, "Summary video frame rate (default from config)")
	cmd.Flags().IntVar(&resizeWidth, "resize-width", 0, "Rescale clips to this width, preserving aspect ratio")
	cmd.Flags().StringVar(&ffmpegBinary, "ffmpeg", "", "Path to the ffmpeg binary (default from config)")

	return cmd
}
