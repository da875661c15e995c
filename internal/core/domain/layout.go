package domain

import "path/filepath"

const (
	// PinpointDirName is the name of the internal workspace directory.
	PinpointDirName = ".pinpoint"

	// CacheDirName is the name of the snapshot cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "pinpoint.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path for the snapshot store.
// It joins .pinpoint and cache.
func DefaultCachePath() string {
	return filepath.Join(PinpointDirName, CacheDirName)
}
