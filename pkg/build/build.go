// Package build contains build-related variables set at compile time.
package build

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

var (
	Version = "N/A"
	Time    = "N/A"

	GitSHA      = "N/A"
	GitDirtyStr = "-1"
	GitDirty    int
)

func init() {
	GitDirty, _ = strconv.Atoi(GitDirtyStr)
}

const tmplt = `
GENERAL
  GOARCH:             %s
  GOOS:               %s
  Version:            %s
  Build Time:         %s
  Git SHA:            %s
  Git Dirty Files:    %d
`

func Summary() string {
	return fmt.Sprintf(strings.TrimSpace(tmplt),
		runtime.GOARCH,
		runtime.GOOS,
		Version,
		Time,
		GitSHA,
		GitDirty,
	)
}
