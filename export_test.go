package kvconfig

// ResetDefault replaces the process-wide store with a fresh one.
func ResetDefault(opts ...Option) {
	defaultStore = New(opts...)
}
