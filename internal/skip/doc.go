// Package skip decides which files and directories a rename run leaves
// alone.
//
// A Filter pairs the configured SkipRules with a Predicate that compares a
// candidate (a directory name, a file's base name or its extension) with a
// configured fragment. The predicate is chosen per configuration through
// skip.matchStrategy; the default is plain substring containment.
package skip
