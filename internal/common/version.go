package common

// Set at build time with -ldflags "-X tarediiran-industries.com/gap-assist/internal/common.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
)
