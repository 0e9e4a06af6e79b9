// Package model defines the domain types and value objects shared by the
// renamer packages.
//
// This package contains pure data structures with no external dependencies.
// Message and MessageType describe the report stream emitted by a rename run;
// they are produced by the engine and consumed by whichever Reporter the
// caller supplies.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
