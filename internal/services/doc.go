// Package services defines shared utilities consumed by the recording and
// assembly components.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures with a
//     stable category (not found, validation, configuration, external tool)
//     while preserving the underlying cause.
//   - Context helpers that stamp assembly run identifiers and the recording
//     currently being processed for logging.
//
// Use these helpers when wiring new components so error handling and
// observability stay uniform across the library and the CLI.
package services
