package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidSourceMap is returned when a position-mapping document cannot be parsed.
	ErrInvalidSourceMap = zerr.New("invalid source map")

	// ErrUnsupportedSourceMap is returned for well-formed documents the decoder does not handle,
	// such as indexed maps with sections or versions other than 3.
	ErrUnsupportedSourceMap = zerr.New("unsupported source map")

	// ErrNotInstrumented is returned when a file has no valid cached instrumentation.
	ErrNotInstrumented = zerr.New("file has not been instrumented or has changed since")

	// ErrNoMapping is returned when a position has no original location.
	ErrNoMapping = zerr.New("no original position for location")

	// ErrInstrumentationFailed is returned when one or more files could not be instrumented.
	ErrInstrumentationFailed = zerr.New("instrumentation failed")

	// ErrInstrumenterFailed is returned when the external instrumenter command fails.
	ErrInstrumenterFailed = zerr.New("instrumenter command failed")

	// ErrInstrumenterOutputInvalid is returned when the instrumenter output cannot be decoded.
	ErrInstrumenterOutputInvalid = zerr.New("instrumenter produced invalid output")

	// ErrInstrumenterNotConfigured is returned when no instrumenter command is configured.
	ErrInstrumenterNotConfigured = zerr.New("no instrumenter command configured")

	// ErrNoFilesSpecified is returned when there is nothing to instrument.
	ErrNoFilesSpecified = zerr.New("no files specified")

	// ErrInvalidPosition is returned when a line or column argument is out of range.
	ErrInvalidPosition = zerr.New("invalid position, line must be >= 1 and column >= 0")

	// ErrInputNotFound is returned when a declared include path or pattern matches nothing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrStoreCreateFailed is returned when the snapshot store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot store directory")

	// ErrStoreReadFailed is returned when a snapshot record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot record")

	// ErrStoreUnmarshalFailed is returned when a snapshot record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal snapshot record")

	// ErrStoreMarshalFailed is returned when a snapshot record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal snapshot record")

	// ErrStoreWriteFailed is returned when a snapshot record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot record")

	// ErrStoreDeleteFailed is returned when a snapshot record cannot be removed.
	ErrStoreDeleteFailed = zerr.New("failed to delete snapshot record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find pinpoint.yaml")

	// ErrConfigInvalid is returned when the config fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
