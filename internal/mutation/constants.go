package mutation

// evolveChance is the independent probability that a successful mutation also
// upgrades the result one rarity tier.
const evolveChance = 0.10

// Log messages
const (
	LogMsgMutateCalled = "Mutate called"
	LogMsgMutationDone = "Mutation resolved"
)

// Error message formats
const (
	ErrMsgBeginTxFailed        = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed       = "failed to commit transaction: %w"
	ErrMsgUpdateStateFailed    = "failed to update game state: %w"
	ErrMsgDeleteFragmentFailed = "failed to delete fragment: %w"
	ErrMsgCreateFragmentFailed = "failed to create fragment: %w"
)
