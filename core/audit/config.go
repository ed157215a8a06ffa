package audit

// Config holds configuration for the wake audit trail.
type Config struct {
	// MemorySize is the number of events kept when no database is available.
	MemorySize int `mapstructure:"memory_size" default:"100"`
}
