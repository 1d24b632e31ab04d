package version

// Version is the CLI version, overridden at build time with
// -ldflags "-X github.com/uw-it-aca/restclients-nws/internal/version.Version=...".
var Version = "0.1.0-dev"
