package main

import "runtime/debug"

var version = getVersion()

// getVersion reports the module version for tagged installs, falling back
// to the short VCS revision for source builds.
func getVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	return versionFromBuildInfo(info)
}

func versionFromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	switch {
	case revision == "":
		return "dev"
	case len(revision) > 7:
		revision = revision[:7]
	}
	if dirty {
		return revision + "-dirty"
	}
	return revision
}
