// Package version хранит сведения о сборке storefront. Значения задаются через -ldflags,
// а при их отсутствии берутся из VCS-меток, которые go build встраивает в бинарник.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Build описывает сборку.
type Build struct {
	Version  string
	Commit   string
	Date     string
	Modified bool
}

var (
	resolveOnce sync.Once
	resolved    Build
)

// Current возвращает сведения о текущей сборке.
func Current() Build {
	resolveOnce.Do(func() {
		resolved = resolve(version, commit, date, debug.ReadBuildInfo)
	})
	return resolved
}

func resolve(v, c, d string, read func() (*debug.BuildInfo, bool)) Build {
	b := Build{Version: v, Commit: c, Date: d}
	info, ok := read()
	if !ok {
		return b
	}

	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "unknown" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// ShortCommit — первые 12 символов хэша.
func (b Build) ShortCommit() string {
	if len(b.Commit) > 12 {
		return b.Commit[:12]
	}
	return b.Commit
}

func (b Build) String() string {
	s := fmt.Sprintf("%s (%s, %s)", b.Version, b.ShortCommit(), b.Date)
	if b.Modified {
		s += " dirty"
	}
	return s
}

// GetVersion возвращает версию сборки.
func GetVersion() string { return Current().Version }

// GetFullVersion возвращает версию вместе с коммитом и датой.
func GetFullVersion() string { return Current().String() }

// Fields возвращает сведения о сборке для стартового лога.
func Fields() log.Fields {
	b := Current()
	return log.Fields{
		"version": b.Version,
		"commit":  b.ShortCommit(),
		"date":    b.Date,
	}
}

// UserAgent — идентификатор утилиты в исходящих gRPC-запросах.
func UserAgent(tool string) string {
	return fmt.Sprintf("storefront-%s/%s", tool, Current().Version)
}
