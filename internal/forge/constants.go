package forge

// Log messages
const (
	LogMsgSpinCalled        = "Spin called"
	LogMsgFragmentGenerated = "Fragment generated"
	LogMsgStateCreated      = "Game state created"
)

// Error message formats
const (
	ErrMsgBeginTxFailed        = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed       = "failed to commit transaction: %w"
	ErrMsgUpdateStateFailed    = "failed to update game state: %w"
	ErrMsgCreateStateFailed    = "failed to create game state: %w"
	ErrMsgCreateFragmentFailed = "failed to create fragment: %w"
)
