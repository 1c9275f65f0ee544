package params

const (
	// AppName is the human-readable name of the simulator.
	AppName = "cardloop"

	// BinaryName is the name of the CLI binary produced by this module.
	BinaryName = "cardloop"

	// EnvPrefix is the environment variable prefix used by the CLI/config system.
	// Example: CARDLOOP_WIDTH, CARDLOOP_LOG_LEVEL, etc.
	EnvPrefix = "CARDLOOP"

	// DefaultWidth is the card value width in bits when none is configured.
	// 8 bits limits a deck to 255 cards.
	DefaultWidth = 8

	// ExitRoundsCap is the largest round count reported through the exit status.
	// Codes above it are reserved for errors.
	ExitRoundsCap = 250
)
