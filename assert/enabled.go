//go:build !assertions_disabled

package assert

// True panics unless value is true. Optional args follow the rules of message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message("assertion failed", args))
}

// False panics unless value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NoError panics if err is non-nil. Without args the error text is the panic message.
func NoError(err error, args ...any) {
	if err == nil {
		return
	}

	if len(args) == 0 {
		panic(err.Error())
	}

	panic(message("assertion failed", args) + ": " + err.Error())
}
