// Package match implements the find-and-replace primitive used for file
// contents, file names and directory names.
//
// Replacement is a single left-to-right pass: every match of the search
// text is either replaced or copied through unchanged, and the scan resumes
// right after the original match. Replaced text is never scanned again, so
// replacing "aa" with "aaa" cannot cascade.
//
// Two options shape what counts as a match:
//   - case sensitivity (Unicode simple case folding when insensitive)
//   - full-word mode, where a match is only replaced if neither adjacent
//     character matches the configured boundary pattern
package match
