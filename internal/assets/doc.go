// Package assets locates referenced media files and encodes them for
// embedding in the compiled artifact.
//
// Resolution is lenient: a reference that matches no file is reported as
// unresolved, never as an error, and the corresponding slot simply renders
// empty at playback. The Collector memoizes lookups by reference name and
// preserves first-reference order so identical inputs always produce an
// identically ordered bundle.
package assets
