// Package buildinfo exposes version data injected with -ldflags at build time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/blogify-auth/internal/buildinfo.Version=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}

// UserAgent is the User-Agent sent with every API request.
func UserAgent() string {
	return "blogify-auth-cli/" + Version
}
