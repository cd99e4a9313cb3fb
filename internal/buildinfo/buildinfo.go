package buildinfo

// Set at build time via:
//
//	-ldflags "-X pocketcalc/internal/buildinfo.Version=... -X pocketcalc/internal/buildinfo.Commit=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}
