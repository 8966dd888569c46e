// Package output provides diagnostics and error handling for the autolink CLI.
//
// The rewritten changelog is a byte stream written straight to stdout. Everything
// else (warnings, --stats summaries, the config command) goes through a
// Printer, which styles human output with lipgloss and disables styling when the
// destination is not a terminal:
//
//	errW := cmd.ErrOrStderr()
//	printer := output.NewPrinter(errW, output.ResolveColorMode(colorFlag, output.IsTTY(errW)))
//	printer.Warn("remote %q not found", "upstream")
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad flags, invalid config, unknown remote
//	output.ExitSystemError // 2: I/O failure on stdin/stdout, git failure
//	output.ExitCheckFailed // 3: --check found text that would be linked
//
// Commands return *ExitError values built with NewUserError,
// NewSystemErrorWithCause or NewCheckError; main maps them to the process exit
// code with GetExitCode.
package output
