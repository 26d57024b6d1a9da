// Package version reports the seqkit module version used as the
// instrumentation version of its telemetry.
//
// Version can be pinned at link time:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.2.0"
//
// Otherwise it is resolved from the binary's build info, which records the
// seqkit version whenever seqkit is built as a dependency.
package version
