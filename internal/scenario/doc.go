// Package scenario loads tabular visual-novel scripts and models their rows.
//
// A script is an ordered sequence of rows; row position is the implicit
// "next scene" pointer, and scene identifiers carry the segment code that
// classifies each row (title card, choice prompt, chapter end, dialogue).
// Classification happens once at load time and is stored on the row so
// downstream code switches on the kind tag instead of re-parsing identifiers.
//
// Script files arrive from authors in a variety of encodings and dialects;
// Load tries a fixed list of encodings and sniffs the field delimiter before
// giving up with ErrIngestion.
package scenario
