// Package config loads and validates Luminas configuration.
//
// Tool settings (directories, build options, logging) live in a TOML file:
// defaults first, file values layered on top, then normalization and
// validation. Game presentation settings form a
// separate flat key set with fixed defaults; authors may supply them in the
// [game] TOML section or, for compatibility with existing projects, as a
// config.yml next to the scenario scripts. Unknown game keys are preserved
// and passed through to the artifact opaquely.
package config
