// Package version exposes build metadata of a binary.
//
// Values are linked in at build time:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/mediator/version.Version=1.2.3 \
//	  -X github.com/ncobase/mediator/version.Branch=main"
//
// Fields left unset are filled from the VCS stamp the Go toolchain embeds
// in the binary, when present.
package version
