// Package fsutil provides the filesystem seam used by the rename engine.
//
// FileSystem lists exactly the operations a rename run performs, so tests
// can wrap the real implementation and inject failures for individual
// paths. OS is the production implementation; its WriteFile replaces files
// atomically on Unix via github.com/google/renameio/v2.
package fsutil
