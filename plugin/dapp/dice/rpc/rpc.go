package rpc

import (
	"context"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
	"github.com/pkg/errors"
)

//unsignedTx 构造发往dice合约的未签名交易，手续费和nonce由框架按链配置填充
func (c *channelClient) unsignedTx(val *pty.DiceAction) (*types.UnsignTx, error) {
	cfg := c.GetConfig()
	tx, err := types.CreateFormatTx(cfg, cfg.ExecName(pty.DiceX), types.Encode(val))
	if err != nil {
		return nil, err
	}
	data := types.Encode(tx)
	return &types.UnsignTx{Data: data}, nil
}

func (c *channelClient) DiceDepositTx(ctx context.Context, req *pty.DiceDepositTxReq) (*types.UnsignTx, error) {
	if req.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	val := &pty.DiceAction{
		Ty:    pty.DiceActionDeposit,
		Value: &pty.DiceAction_Deposit{Deposit: &pty.DiceDeposit{Amount: req.Amount}},
	}
	return c.unsignedTx(val)
}

func (c *channelClient) DiceWithdrawTx(ctx context.Context, req *pty.DiceWithdrawTxReq) (*types.UnsignTx, error) {
	if req.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	val := &pty.DiceAction{
		Ty:    pty.DiceActionWithdraw,
		Value: &pty.DiceAction_Withdraw{Withdraw: &pty.DiceWithdraw{Amount: req.Amount}},
	}
	return c.unsignedTx(val)
}

func (c *channelClient) DiceOfferBetTx(ctx context.Context, req *pty.DiceOfferBetTxReq) (*types.UnsignTx, error) {
	if req.GetStake() <= 0 {
		return nil, pty.ErrDiceInvalidBet
	}
	commitment, err := common.FromHex(req.GetCommitment())
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "commitment is not valid hex")
	}
	val := &pty.DiceAction{
		Ty:    pty.DiceActionOfferBet,
		Value: &pty.DiceAction_OfferBet{OfferBet: &pty.DiceOfferBet{Stake: req.Stake, Commitment: commitment}},
	}
	return c.unsignedTx(val)
}

func (c *channelClient) DiceCancelOfferTx(ctx context.Context, req *pty.DiceCancelOfferTxReq) (*types.UnsignTx, error) {
	commitment, err := common.FromHex(req.GetCommitment())
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "commitment is not valid hex")
	}
	val := &pty.DiceAction{
		Ty:    pty.DiceActionCancelOffer,
		Value: &pty.DiceAction_CancelOffer{CancelOffer: &pty.DiceCancelOffer{Commitment: commitment}},
	}
	return c.unsignedTx(val)
}

func (c *channelClient) DiceRevealTx(ctx context.Context, req *pty.DiceRevealTxReq) (*types.UnsignTx, error) {
	commitment, err := common.FromHex(req.GetCommitment())
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "commitment is not valid hex")
	}
	secret, err := common.FromHex(req.GetSecret())
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "secret is not valid hex")
	}
	val := &pty.DiceAction{
		Ty:    pty.DiceActionReveal,
		Value: &pty.DiceAction_Reveal{Reveal: &pty.DiceReveal{Commitment: commitment, Secret: secret}},
	}
	return c.unsignedTx(val)
}

func (c *channelClient) DiceClaimExpiredTx(ctx context.Context, req *pty.DiceClaimExpiredTxReq) (*types.UnsignTx, error) {
	if req.GetGameId() <= 0 {
		return nil, pty.ErrDiceGameNotFound
	}
	val := &pty.DiceAction{
		Ty:    pty.DiceActionClaimExpired,
		Value: &pty.DiceAction_ClaimExpired{ClaimExpired: &pty.DiceClaimExpired{GameId: req.GameId}},
	}
	return c.unsignedTx(val)
}
