package buildinfo

import "runtime"

// set via -ldflags at build time
var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
	Compiler   string `json:"compiler"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
}

func New() BuildInfo {
	return BuildInfo{
		Version:    version,
		CommitHash: commitHash,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Compiler:   runtime.Compiler,
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}
