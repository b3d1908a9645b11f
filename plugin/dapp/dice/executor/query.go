package executor

import (
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

func (d *Dice) Query_QueryAccountByAddr(in *pty.ReqDiceAddr) (types.Message, error) {
	acc, err := readAccount(d.GetStateDB(), in.GetAddr())
	if err != nil {
		return nil, err
	}
	return &pty.ReplyDiceAccount{Account: acc}, nil
}

func (d *Dice) Query_QueryOfferByCommitment(in *pty.ReqDiceOffer) (types.Message, error) {
	commitment, err := common.FromHex(in.GetCommitment())
	if err != nil {
		return nil, types.ErrInvalidParam
	}
	offer, err := readOffer(d.GetStateDB(), commitment)
	if err != nil {
		return nil, err
	}
	return &pty.ReplyDiceOffer{Offer: offer}, nil
}

func (d *Dice) Query_QueryGameById(in *pty.ReqDiceGame) (types.Message, error) {
	game, err := readGame(d.GetStateDB(), in.GetGameId())
	if err != nil {
		return nil, err
	}
	return &pty.ReplyDiceGame{Game: game}, nil
}

func (d *Dice) Query_QueryOpenOffersByStake(in *pty.ReqDiceOffersByStake) (types.Message, error) {
	var key []byte
	if in.GetStartId() > 0 {
		key = calcOfferStakeKey(in.Stake, in.StartId)
	}
	return d.listOffers(calcOfferStakePrefix(in.GetStake()), key, in.GetCount())
}

func (d *Dice) Query_QueryOffersByAddr(in *pty.ReqDiceOffersByAddr) (types.Message, error) {
	var key []byte
	if in.GetStartId() > 0 {
		key = calcOfferAddrKey(in.Addr, in.StartId)
	}
	return d.listOffers(calcOfferAddrPrefix(in.GetAddr()), key, in.GetCount())
}

func (d *Dice) Query_QueryGamesByStatus(in *pty.ReqDiceGamesByStatus) (types.Message, error) {
	var key []byte
	if in.GetStartId() > 0 {
		key = calcGameStatusKey(in.Status, in.StartId)
	}
	return d.listGames(calcGameStatusPrefix(in.GetStatus()), key, in.GetCount())
}

func (d *Dice) Query_QueryGamesByAddr(in *pty.ReqDiceGamesByAddr) (types.Message, error) {
	var key []byte
	if in.GetStartId() > 0 {
		key = calcGameAddrKey(in.Addr, in.StartId)
	}
	return d.listGames(calcGameAddrPrefix(in.GetAddr()), key, in.GetCount())
}

func (d *Dice) listCount(count int32) int32 {
	cfg := d.GetAPI().GetConfig()
	c := int64(count)
	if c <= 0 {
		c = GetConfValue(cfg, d.GetStateDB(), ConfNameDefaultCount, DefaultCount)
	}
	max := GetConfValue(cfg, d.GetStateDB(), ConfNameMaxCount, MaxCount)
	if c > max {
		c = max
	}
	return int32(c)
}

//listOffers 从localdb索引翻页取报价引用，再回状态库取报价本体
func (d *Dice) listOffers(prefix, key []byte, count int32) (types.Message, error) {
	values, err := d.GetLocalDB().List(prefix, key, d.listCount(count), ListASC)
	if err != nil {
		return nil, err
	}
	reply := &pty.ReplyDiceOfferList{}
	for _, value := range values {
		var rec pty.DiceOfferRecord
		err = types.Decode(value, &rec)
		if err != nil {
			continue
		}
		offer, err := readOffer(d.GetStateDB(), rec.Commitment)
		if err != nil {
			dlog.Debug("listOffers stale index entry", "offerId", rec.OfferId)
			continue
		}
		reply.Offers = append(reply.Offers, offer)
	}
	return reply, nil
}

func (d *Dice) listGames(prefix, key []byte, count int32) (types.Message, error) {
	values, err := d.GetLocalDB().List(prefix, key, d.listCount(count), ListASC)
	if err != nil {
		return nil, err
	}
	reply := &pty.ReplyDiceGameList{}
	for _, value := range values {
		var rec pty.DiceGameRecord
		err = types.Decode(value, &rec)
		if err != nil {
			continue
		}
		game, err := readGame(d.GetStateDB(), rec.GameId)
		if err != nil {
			dlog.Debug("listGames stale index entry", "gameId", rec.GameId)
			continue
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}
