package constants

// Redis key formats
const (
	KeySession = "session:%s" // Format: session:{token}
)
