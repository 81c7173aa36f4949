//go:build assertions_disabled

package assert

func True(value bool, args ...any) {
	// Intentionally left blank
}

func False(value bool, args ...any) {
	// Intentionally left blank
}

func NoError(err error, args ...any) {
	// Intentionally left blank
}
