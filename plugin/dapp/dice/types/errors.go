package types

import "errors"

var (
	ErrDiceInvalidBet         = errors.New("the stake must be a positive amount")
	ErrDiceDuplicateCommit    = errors.New("an offer with the same commitment already exists")
	ErrDiceAccountNotFound    = errors.New("the account is unknown, deposit first")
	ErrDiceInsufficientFunds  = errors.New("the account balance can't cover the amount")
	ErrDiceOfferNotFound      = errors.New("no offer found for the commitment")
	ErrDiceOfferAddr          = errors.New("you don't have permission to operate someone else's offer")
	ErrDiceOfferMatched       = errors.New("can't cancel the offer, it has been matched into a game")
	ErrDiceGameNotFound       = errors.New("no game found for the id")
	ErrDiceNotInGame          = errors.New("the offer has not been matched into a game yet")
	ErrDiceAlreadyRevealed    = errors.New("the secret for this slot has already been revealed")
	ErrDiceInvalidReveal      = errors.New("the secret doesn't hash to the commitment")
	ErrDiceGameNotExpired     = errors.New("the reveal deadline has not passed yet")
	ErrDiceGameCorrupt        = errors.New("the game state is inconsistent, expected exactly one reveal")
)
