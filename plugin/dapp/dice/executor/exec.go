package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

func (d *Dice) Exec_Deposit(payload *pty.DiceDeposit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.Deposit(payload)
}

func (d *Dice) Exec_Withdraw(payload *pty.DiceWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.Withdraw(payload)
}

func (d *Dice) Exec_OfferBet(payload *pty.DiceOfferBet, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.OfferBet(payload)
}

func (d *Dice) Exec_CancelOffer(payload *pty.DiceCancelOffer, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.CancelOffer(payload)
}

func (d *Dice) Exec_Reveal(payload *pty.DiceReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.Reveal(payload)
}

func (d *Dice) Exec_ClaimExpired(payload *pty.DiceClaimExpired, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.ClaimExpired(payload)
}
