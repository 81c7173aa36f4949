// Package assert provides panicking checks for programmer errors: conditions that can only
// fail when an internal contract has been broken, never because of caller input.
//
// Checks compile to no-ops under the assertions_disabled build tag, except Unreachable,
// which always panics because the code after it has no valid state to continue from.
package assert

import "fmt"

// Unreachable panics with the formatted message. Use it in switch defaults and other
// branches that a correct caller cannot reach.
func Unreachable(args ...any) {
	panic(message("unreachable code reached", args))
}

// message renders the optional panic arguments:
//   - no args: fallback
//   - a leading string: format string applied to the remaining args
//   - anything else: all args appended to fallback
func message(fallback string, args []any) string {
	if len(args) == 0 {
		return fallback
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("%s: %v", fallback, args)
}
