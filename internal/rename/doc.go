// Package rename implements the rename engine: a bulk find-and-replace over
// a directory tree covering file contents, file names and directory names.
//
// A run executes in fixed, sequential phases:
//  1. Validate arguments and ask the caller's confirmation gate. Nothing on
//     disk changes before the gate approves.
//  2. Discover directories top-down, pruning skipped subtrees and recording
//     which directories need a new name.
//  3. For every discovered directory, rewrite its files' contents and
//     rename the files themselves.
//  4. Rename the recorded directories deepest first, so renaming a parent
//     never invalidates a child path that is still queued.
//
// Every mutation is isolated: a failure on one item becomes an Error message
// and the run moves on. Only invalid arguments, a missing root directory or
// a declined confirmation stop a run, and all three happen before any
// mutation. All output flows through the caller-supplied Reporter; the
// engine keeps no package-level mutable state.
package rename
