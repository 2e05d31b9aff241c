// Package plays persists hit-by-pitch events for the HBP pipeline.
//
// A play is one recorded pitch that hit a batter, keyed by its statcast play
// id, with the game, the two players, and where and how fast the pitch
// crossed the plate. Three flags track progress through the downstream
// workflows: downloaded (video fetched), analyzed (plot rendered) and
// skeeted (posted).
//
// Repositories follow the interface-plus-SQLite-implementation pattern used
// across the codebase so callers can be tested against mocks.
package plays
