package executor

import (
	"github.com/33cn/chain33/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

//rollbackOfferIndex 按回执把报价索引恢复到动作执行前的样子
func rollbackOfferIndex(log *types.ReceiptLog, r *pty.ReceiptDiceOffer) (kvs []*types.KeyValue) {
	switch log.Ty {
	case pty.TyLogDiceOfferBet:
		if r.Status == pty.DiceOfferStatusOpen {
			kvs = append(kvs, delLocalKV(calcOfferStakeKey(r.Stake, r.OfferId)))
		}
		kvs = append(kvs, delLocalKV(calcOfferAddrKey(r.Addr, r.OfferId)))
	case pty.TyLogDiceOfferMatch:
		kvs = append(kvs, setKV(calcOfferStakeKey(r.Stake, r.OfferId), offerRecordValue(r)))
	case pty.TyLogDiceCancelOffer:
		kvs = append(kvs, setKV(calcOfferStakeKey(r.Stake, r.OfferId), offerRecordValue(r)))
		kvs = append(kvs, setKV(calcOfferAddrKey(r.Addr, r.OfferId), offerRecordValue(r)))
	}
	return kvs
}

func rollbackGameIndex(log *types.ReceiptLog, r *pty.ReceiptDiceGame) (kvs []*types.KeyValue) {
	switch log.Ty {
	case pty.TyLogDiceGameStart:
		kvs = append(kvs, delLocalKV(calcGameStatusKey(r.Status, r.GameId)))
		kvs = append(kvs, delLocalKV(calcGameAddrKey(r.Player1, r.GameId)))
		kvs = append(kvs, delLocalKV(calcGameAddrKey(r.Player2, r.GameId)))
	case pty.TyLogDiceReveal:
		kvs = append(kvs, delLocalKV(calcGameStatusKey(r.Status, r.GameId)))
		kvs = append(kvs, setKV(calcGameStatusKey(r.PrevStatus, r.GameId), gameRecordValue(r.GameId)))
	case pty.TyLogDiceClaimExpired, pty.TyLogDiceGameSettle:
		kvs = append(kvs, setKV(calcGameStatusKey(r.PrevStatus, r.GameId), gameRecordValue(r.GameId)))
		kvs = append(kvs, setKV(calcGameAddrKey(r.Player1, r.GameId), gameRecordValue(r.GameId)))
		kvs = append(kvs, setKV(calcGameAddrKey(r.Player2, r.GameId), gameRecordValue(r.GameId)))
		//结算删掉的报价地址索引也要还原
		player1OfferId, player2OfferId := r.WinnerOfferId, r.LoserOfferId
		if r.Winner != r.Player1 {
			player1OfferId, player2OfferId = r.LoserOfferId, r.WinnerOfferId
		}
		kvs = append(kvs, setKV(calcOfferAddrKey(r.Player1, player1OfferId),
			offerRecordValue(&pty.ReceiptDiceOffer{OfferId: player1OfferId, Commitment: r.Commitment1})))
		kvs = append(kvs, setKV(calcOfferAddrKey(r.Player2, player2OfferId),
			offerRecordValue(&pty.ReceiptDiceOffer{OfferId: player2OfferId, Commitment: r.Commitment2})))
	}
	return kvs
}

func (d *Dice) rollbackIndex(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, log := range receiptData.Logs {
		switch log.Ty {
		case pty.TyLogDiceOfferBet, pty.TyLogDiceOfferMatch, pty.TyLogDiceCancelOffer:
			var r pty.ReceiptDiceOffer
			err := types.Decode(log.Log, &r)
			if err != nil {
				return nil, err
			}
			set.KV = append(set.KV, rollbackOfferIndex(log, &r)...)
		case pty.TyLogDiceGameStart, pty.TyLogDiceReveal, pty.TyLogDiceClaimExpired, pty.TyLogDiceGameSettle:
			var r pty.ReceiptDiceGame
			err := types.Decode(log.Log, &r)
			if err != nil {
				return nil, err
			}
			set.KV = append(set.KV, rollbackGameIndex(log, &r)...)
		}
	}
	return set, nil
}

func (d *Dice) ExecDelLocal_Deposit(payload *pty.DiceDeposit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

func (d *Dice) ExecDelLocal_Withdraw(payload *pty.DiceWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

func (d *Dice) ExecDelLocal_OfferBet(payload *pty.DiceOfferBet, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.rollbackIndex(receiptData)
}

func (d *Dice) ExecDelLocal_CancelOffer(payload *pty.DiceCancelOffer, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.rollbackIndex(receiptData)
}

func (d *Dice) ExecDelLocal_Reveal(payload *pty.DiceReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.rollbackIndex(receiptData)
}

func (d *Dice) ExecDelLocal_ClaimExpired(payload *pty.DiceClaimExpired, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.rollbackIndex(receiptData)
}
