// Package bundle assembles the compiled artifact: a single self-contained
// HTML document embedding the row sequence as JSON, the asset map, the
// presentation configuration, a theme-parameterized style layer, and the
// fixed playback script.
//
// Assembly is a pure function of its inputs. Asset entries are serialized in
// first-reference order and configuration keys in a fixed order, so
// identical inputs produce byte-identical artifacts. The only failure mode
// is the artifact not being writable.
package bundle
