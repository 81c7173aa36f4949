package config

// Soak defaults.
const (
	DefaultSoakTrials   = 8
	DefaultSoakKeys     = 2000
	DefaultSoakKeySpace = 100000
	DefaultSoakSeed     = 0
	DefaultSoakWorkers  = 4
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Render defaults.
const (
	DefaultRenderColor = true
)
