// Package buildinfo contains build information.
//
// The version is derived from the module build information by
// pkt.systems/version. It can be overridden during compilation by passing
// -ldflags "-X amath.elv.sh/pkg/buildinfo.VersionOverride=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"amath.elv.sh/pkg/prog"
	"pkt.systems/version"
)

// ModulePath is the path of the amath module.
const ModulePath = "amath.elv.sh"

// VersionOverride, if not empty, is used as the version instead of the one
// derived from the build information.
var VersionOverride = ""

// Type contains all the build information fields.
type Type struct {
	Module    string `json:"module"`
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Module:    ModulePath,
	Version:   currentVersion(),
	GoVersion: runtime.Version(),
}

func currentVersion() string {
	if VersionOverride != "" {
		return VersionOverride
	}
	version.SetDefaultModule(ModulePath)
	return fmt.Sprint(version.Current())
}

// Program is the buildinfo subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Module:", Value.Module)
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
