package version

// Build metadata, set with -ldflags "-X option-surface/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)
