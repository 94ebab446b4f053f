package draft

// Config tunes an LLMGenerator.
type Config struct {
	MaxTokens   int
	Temperature float64

	// PriorLimit caps how many existing prompts are listed in the request.
	PriorLimit int

	// Attempts bounds how many drafts are requested when checks keep
	// rejecting them. Provider errors end drafting at once; providers
	// retry those themselves.
	Attempts int

	// Checks run in order on every draft; the first rejection wins.
	Checks []Check
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		PriorLimit:  10,
		Attempts:    2,
		Checks:      StandardChecks(),
	}
}
