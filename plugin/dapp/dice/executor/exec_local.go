package executor

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

/*
localdb 索引：
  报价按(押注金额, 报价编号)升序、按(地址, 报价编号)各建一条；
  对局按(状态, 对局编号)、按(参与地址, 对局编号)各建一条。
  状态变化时同步删除旧索引，结算时全部清掉，以免留下脏数据。
*/

func offerRecordValue(r *pty.ReceiptDiceOffer) []byte {
	commitment, err := common.FromHex(r.Commitment)
	if err != nil {
		dlog.Error("offerRecordValue bad commitment", "offerId", r.OfferId, "err", err)
	}
	return types.Encode(&pty.DiceOfferRecord{OfferId: r.OfferId, Commitment: commitment})
}

func gameRecordValue(gameId int64) []byte {
	return types.Encode(&pty.DiceGameRecord{GameId: gameId})
}

func setKV(key, value []byte) *types.KeyValue {
	return &types.KeyValue{Key: key, Value: value}
}

func delLocalKV(key []byte) *types.KeyValue {
	return &types.KeyValue{Key: key, Value: nil}
}

//updateOfferIndex 报价回执 → 索引增删
func updateOfferIndex(log *types.ReceiptLog, r *pty.ReceiptDiceOffer) (kvs []*types.KeyValue) {
	switch log.Ty {
	case pty.TyLogDiceOfferBet:
		if r.Status == pty.DiceOfferStatusOpen {
			kvs = append(kvs, setKV(calcOfferStakeKey(r.Stake, r.OfferId), offerRecordValue(r)))
		}
		kvs = append(kvs, setKV(calcOfferAddrKey(r.Addr, r.OfferId), offerRecordValue(r)))
	case pty.TyLogDiceOfferMatch:
		kvs = append(kvs, delLocalKV(calcOfferStakeKey(r.Stake, r.OfferId)))
	case pty.TyLogDiceCancelOffer:
		kvs = append(kvs, delLocalKV(calcOfferStakeKey(r.Stake, r.OfferId)))
		kvs = append(kvs, delLocalKV(calcOfferAddrKey(r.Addr, r.OfferId)))
	}
	return kvs
}

//updateGameIndex 对局回执 → 索引增删
func updateGameIndex(log *types.ReceiptLog, r *pty.ReceiptDiceGame) (kvs []*types.KeyValue) {
	switch log.Ty {
	case pty.TyLogDiceGameStart:
		kvs = append(kvs, setKV(calcGameStatusKey(r.Status, r.GameId), gameRecordValue(r.GameId)))
		kvs = append(kvs, setKV(calcGameAddrKey(r.Player1, r.GameId), gameRecordValue(r.GameId)))
		kvs = append(kvs, setKV(calcGameAddrKey(r.Player2, r.GameId), gameRecordValue(r.GameId)))
	case pty.TyLogDiceReveal:
		kvs = append(kvs, delLocalKV(calcGameStatusKey(r.PrevStatus, r.GameId)))
		kvs = append(kvs, setKV(calcGameStatusKey(r.Status, r.GameId), gameRecordValue(r.GameId)))
	case pty.TyLogDiceClaimExpired, pty.TyLogDiceGameSettle:
		kvs = append(kvs, delLocalKV(calcGameStatusKey(r.PrevStatus, r.GameId)))
		kvs = append(kvs, delLocalKV(calcGameAddrKey(r.Player1, r.GameId)))
		kvs = append(kvs, delLocalKV(calcGameAddrKey(r.Player2, r.GameId)))
		kvs = append(kvs, delLocalKV(calcOfferAddrKey(r.Winner, r.WinnerOfferId)))
		kvs = append(kvs, delLocalKV(calcOfferAddrKey(r.Loser, r.LoserOfferId)))
	}
	return kvs
}

func (d *Dice) updateIndex(receiptData *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, log := range receiptData.Logs {
		switch log.Ty {
		case pty.TyLogDiceOfferBet, pty.TyLogDiceOfferMatch, pty.TyLogDiceCancelOffer:
			var r pty.ReceiptDiceOffer
			err := types.Decode(log.Log, &r)
			if err != nil {
				return nil, err
			}
			set.KV = append(set.KV, updateOfferIndex(log, &r)...)
		case pty.TyLogDiceGameStart, pty.TyLogDiceReveal, pty.TyLogDiceClaimExpired, pty.TyLogDiceGameSettle:
			var r pty.ReceiptDiceGame
			err := types.Decode(log.Log, &r)
			if err != nil {
				return nil, err
			}
			set.KV = append(set.KV, updateGameIndex(log, &r)...)
		}
	}
	return set, nil
}

func (d *Dice) ExecLocal_Deposit(payload *pty.DiceDeposit, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

func (d *Dice) ExecLocal_Withdraw(payload *pty.DiceWithdraw, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

func (d *Dice) ExecLocal_OfferBet(payload *pty.DiceOfferBet, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.updateIndex(receiptData)
}

func (d *Dice) ExecLocal_CancelOffer(payload *pty.DiceCancelOffer, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.updateIndex(receiptData)
}

func (d *Dice) ExecLocal_Reveal(payload *pty.DiceReveal, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.updateIndex(receiptData)
}

func (d *Dice) ExecLocal_ClaimExpired(payload *pty.DiceClaimExpired, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return d.updateIndex(receiptData)
}
