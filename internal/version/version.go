package version

import (
	"runtime"
	"runtime/debug"
)

// Overridden at build time:
//
//	go build -ldflags "-X github.com/2kybe3/kcli/internal/version.Version=v0.2.0"
var (
	Version   = "dev"             // ex: v0.1.0
	Commit    = "none"            // ex: abcd123
	BuildDate = "unknown"         // ex: 2025-08-11T18:42:00Z
	GoVersion = runtime.Version() // go version
)

func init() {
	if Version != "dev" {
		return
	}
	// "go install module@version" leaves no ldflags but records the module version
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}
