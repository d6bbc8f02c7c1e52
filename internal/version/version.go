package version

// Version is overridable at build time via -ldflags "-X strscan/internal/version.Version=...".
var Version = "0.1.0"
