// Package linker rewrites changelog text so that bare pull-request references
// and commit hashes become Markdown reference links.
//
// A Linker makes a single forward pass over its input. Each line is classified
// by three matchers with fixed precedence:
//
//   - Link definitions (`[id]: url` at line start) are recorded and passed
//     through untouched.
//   - PR references (`#123`) are wrapped as `[#123][]`.
//   - Commit hashes (7 to 40 lowercase hex digits) are wrapped as `[abc1234][]`.
//
// Tokens already preceded by `[` are never wrapped again. Once the input is
// exhausted, Definitions returns a link-definition line for every reference
// that no existing definition covers:
//
//	l := linker.New(linker.DefaultBaseURL)
//	if err := l.Run(os.Stdin, os.Stdout); err != nil {
//	    return err
//	}
//
// Running the output through a fresh Linker again yields identical text.
package linker
