package api

// Valid reports whether s is one of the known detail states.
func (s DetailStatus) Valid() bool {
	switch s {
	case Pending, Processing, Sent, Failed:
		return true
	}
	return false
}
