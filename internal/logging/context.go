package logging

import (
	"context"
	"log/slog"

	"trainreel/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for assembly run identifiers.
	FieldRunID = "run_id"
	// FieldRecording is the standardized structured logging key for recording filenames.
	FieldRecording = "recording"
	// FieldEpisodeLabel is the standardized structured logging key for display labels.
	FieldEpisodeLabel = "episode_label"
	// FieldFrameCount is the standardized structured logging key for frame totals.
	FieldFrameCount = "frame_count"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if name, ok := services.RecordingFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRecording, name))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
