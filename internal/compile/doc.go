// Package compile orchestrates a build: ingest the script, resolve and
// embed referenced assets, and write the self-contained artifact.
//
// The pipeline is a single-threaded batch process guarded by a file lock on
// the output directory so two builds never interleave writes. Unresolved
// assets are warnings by default; strict mode promotes them to a build
// failure for authors who want missing references caught at compile time.
package compile
