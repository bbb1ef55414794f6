package version

import (
	"runtime/debug"
)

func get() Info {
	var info Info
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		info.Version = buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		case "vcs.revision":
			commit := setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
			info.Commit = commit
		}
	}
	return info
}

func (i Info) toString() string {
	version := i.Version
	if version == "" {
		if i.Commit == "" {
			version = "unknown"
		} else {
			version = "devel-" + i.Commit
		}
	}
	if i.Dirty {
		version += "-dirty"
	}
	return version
}
