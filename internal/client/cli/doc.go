// Package cli provides the interactive Mindful command-line client.
//
// It wires configuration, the local sqlite cache, the REST collaborator
// client, the state synchronizer and an interactive REPL. Typical flow:
// restore the cached session, seed collections from the cache, refetch from
// the collaborator in the background, and execute user commands against the
// synchronizer.
//
// Key features:
//   - Register / Login / Logout (JWT session persisted locally)
//   - Journal entries: write, list, AI reflection, delete
//   - Tasks: add, list, toggle, delete, AI study planner
//   - Feed: share an entry as a post, like, delete
//   - Friends: manage AI companions and chat with them
//   - Insights: entity extraction ("memories") and the smart task feed
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartRefetchWatcher, and runREPL for details.
package cli
