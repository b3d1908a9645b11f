package executor

//database operation for executor dice
import (
	"bytes"
	"strconv"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

const commitmentSize = 32

/*
一局对赌的生命周期：

 1.双方先 Deposit 充值到合约内账户。
 2.一方 OfferBet 以(押注金额, 承诺值)挂单；若同额队列里已有他人的报价，
   按报价编号从小到大撮合成一局，否则进入队列等待。
 3.双方 Reveal 各自的秘密，第二个揭示到达时立即结算；只有一方揭示时
   记下截止时间，超时后由 ClaimExpired 判已揭示方获胜。
 4.结算是唯一的清理路径：对局和两笔报价从状态库删除，败方账户若已清空
   一并回收。
*/

type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	localDB      dbm.KVDB
	index        int
	cfg          *types.Chain33Config
}

func NewAction(d *Dice, tx *types.Transaction, index int) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	return &Action{d.GetCoinsAccount(), d.GetStateDB(), hash, fromaddr,
		d.GetBlockTime(), d.GetHeight(), drivers.ExecAddress(string(tx.Execer)), d.GetLocalDB(), index,
		d.GetAPI().GetConfig()}
}

//Player1Wins 以两个槽位的承诺值和揭示值的结构序拼接摘要定胜负
func Player1Wins(player1, player2 *pty.DicePlayer) bool {
	var buf bytes.Buffer
	buf.Write(player1.GetCommitment())
	buf.Write(player1.GetReveal())
	buf.Write(player2.GetCommitment())
	buf.Write(player2.GetReveal())
	digest := common.Sha256(buf.Bytes())
	return digest[1] < digest[0]
}

//结算删除的键置了空值，读取时空数据一律按未找到处理
func readValue(db dbm.KV, key []byte, msg types.Message) error {
	data, err := db.Get(key)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return types.ErrNotFound
	}
	return types.Decode(data, msg)
}

func readAccount(db dbm.KV, addr string) (*pty.DiceAccount, error) {
	var acc pty.DiceAccount
	err := readValue(db, accountKey(addr), &acc)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func readOffer(db dbm.KV, commitment []byte) (*pty.DiceOffer, error) {
	var offer pty.DiceOffer
	err := readValue(db, offerKey(commitment), &offer)
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func readGame(db dbm.KV, id int64) (*pty.DiceGame, error) {
	var game pty.DiceGame
	err := readValue(db, gameKey(id), &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

//readGlobal 计数器首次读取时从1起算
func (action *Action) readGlobal() *pty.DiceGlobal {
	global := &pty.DiceGlobal{NextGameId: 1, NextOfferId: 1}
	data, err := action.db.Get(globalKey())
	if err != nil || len(data) == 0 {
		return global
	}
	err = types.Decode(data, global)
	if err != nil {
		return &pty.DiceGlobal{NextGameId: 1, NextOfferId: 1}
	}
	return global
}

func (action *Action) readQueue(stake int64) *pty.DiceStakeQueue {
	queue := &pty.DiceStakeQueue{Stake: stake}
	data, err := action.db.Get(stakeQueueKey(stake))
	if err != nil || len(data) == 0 {
		return queue
	}
	err = types.Decode(data, queue)
	if err != nil {
		return &pty.DiceStakeQueue{Stake: stake}
	}
	return queue
}

func (action *Action) saveKV(key []byte, msg types.Message) *types.KeyValue {
	value := types.Encode(msg)
	action.db.Set(key, value)
	return &types.KeyValue{Key: key, Value: value}
}

//delKV 置空即删除，结算与撤单走这条路径
func (action *Action) delKV(key []byte) *types.KeyValue {
	action.db.Set(key, nil)
	return &types.KeyValue{Key: key, Value: nil}
}

func (action *Action) saveQueue(queue *pty.DiceStakeQueue) *types.KeyValue {
	if len(queue.Offers) == 0 {
		return action.delKV(stakeQueueKey(queue.Stake))
	}
	return action.saveKV(stakeQueueKey(queue.Stake), queue)
}

//isEmpty 余额和挂单对局计数全部清零的账户可以被回收
func isEmpty(acc *pty.DiceAccount) bool {
	return acc.Balance == 0 && acc.OpenOffers == 0 && acc.OpenGames == 0
}

func accountLog(logTy int32, acc *pty.DiceAccount, prevBalance int64, removed bool) *types.ReceiptLog {
	r := &pty.ReceiptDiceAccount{
		Addr:        acc.Addr,
		PrevBalance: prevBalance,
		Balance:     acc.Balance,
		Removed:     removed,
	}
	return &types.ReceiptLog{Ty: int32(logTy), Log: types.Encode(r)}
}

func offerLog(logTy int32, offer *pty.DiceOffer, prevStatus int32) *types.ReceiptLog {
	r := &pty.ReceiptDiceOffer{
		OfferId:    offer.OfferId,
		Addr:       offer.Addr,
		Stake:      offer.Stake,
		Commitment: common.ToHex(offer.Commitment),
		Status:     offer.Status,
		PrevStatus: prevStatus,
		GameId:     offer.GameId,
	}
	return &types.ReceiptLog{Ty: logTy, Log: types.Encode(r)}
}

func (action *Action) Deposit(deposit *pty.DiceDeposit) (*types.Receipt, error) {
	if deposit.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, deposit.Amount)
	if err != nil {
		dlog.Error("Deposit.ExecFrozen", "addr", action.fromaddr, "amount", deposit.Amount, "err", err)
		return nil, err
	}
	acc, err := readAccount(action.db, action.fromaddr)
	if err == types.ErrNotFound {
		acc = &pty.DiceAccount{Addr: action.fromaddr}
	} else if err != nil {
		return nil, err
	}
	prevBalance := acc.Balance
	acc.Balance += deposit.Amount

	logs := append(receipt.Logs, accountLog(pty.TyLogDiceDeposit, acc, prevBalance, false))
	kv := append(receipt.KV, action.saveKV(accountKey(acc.Addr), acc))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) Withdraw(withdraw *pty.DiceWithdraw) (*types.Receipt, error) {
	if withdraw.GetAmount() <= 0 {
		return nil, types.ErrAmount
	}
	acc, err := readAccount(action.db, action.fromaddr)
	if err == types.ErrNotFound {
		return nil, pty.ErrDiceAccountNotFound
	} else if err != nil {
		return nil, err
	}
	if acc.Balance < withdraw.Amount {
		return nil, pty.ErrDiceInsufficientFunds
	}
	receipt, err := action.coinsAccount.ExecActive(action.fromaddr, action.execaddr, withdraw.Amount)
	if err != nil {
		dlog.Error("Withdraw.ExecActive", "addr", action.fromaddr, "amount", withdraw.Amount, "err", err)
		return nil, err
	}
	prevBalance := acc.Balance
	acc.Balance -= withdraw.Amount

	var kv []*types.KeyValue
	removed := isEmpty(acc)
	if removed {
		kv = append(receipt.KV, action.delKV(accountKey(acc.Addr)))
	} else {
		kv = append(receipt.KV, action.saveKV(accountKey(acc.Addr), acc))
	}
	logs := append(receipt.Logs, accountLog(pty.TyLogDiceWithdraw, acc, prevBalance, removed))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) OfferBet(offerBet *pty.DiceOfferBet) (*types.Receipt, error) {
	if offerBet.GetStake() <= 0 {
		return nil, pty.ErrDiceInvalidBet
	}
	if len(offerBet.GetCommitment()) != commitmentSize {
		return nil, types.ErrInvalidParam
	}
	_, err := readOffer(action.db, offerBet.Commitment)
	if err == nil {
		return nil, pty.ErrDiceDuplicateCommit
	} else if err != types.ErrNotFound {
		return nil, err
	}
	acc, err := readAccount(action.db, action.fromaddr)
	if err == types.ErrNotFound {
		return nil, pty.ErrDiceAccountNotFound
	} else if err != nil {
		return nil, err
	}
	if acc.Balance < offerBet.Stake {
		return nil, pty.ErrDiceInsufficientFunds
	}

	global := action.readGlobal()
	offer := &pty.DiceOffer{
		OfferId:    global.NextOfferId,
		Addr:       action.fromaddr,
		Stake:      offerBet.Stake,
		Commitment: offerBet.Commitment,
		Status:     pty.DiceOfferStatusOpen,
	}
	global.NextOfferId++
	acc.Balance -= offer.Stake

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	queue := action.readQueue(offer.Stake)
	maker := action.firstMatchable(queue)
	if maker == nil {
		//无人可配，进队列等待
		queue.Offers = append(queue.Offers, &pty.DiceOfferRecord{OfferId: offer.OfferId, Commitment: offer.Commitment})
		acc.OpenOffers++
		kv = append(kv, action.saveQueue(queue))
		kv = append(kv, action.saveKV(offerKey(offer.Commitment), offer))
		kv = append(kv, action.saveKV(accountKey(acc.Addr), acc))
		kv = append(kv, action.saveKV(globalKey(), global))
		logs = append(logs, offerLog(pty.TyLogDiceOfferBet, offer, 0))
		return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
	}

	//撮合：队列中最早的他人报价做先手
	game := &pty.DiceGame{
		GameId:  global.NextGameId,
		Stake:   offer.Stake,
		Player1: &pty.DicePlayer{Commitment: maker.Commitment},
		Player2: &pty.DicePlayer{Commitment: offer.Commitment},
		Status:  pty.DiceGameStatusAwaiting,
	}
	global.NextGameId++

	for i, rec := range queue.Offers {
		if rec.OfferId == maker.OfferId {
			queue.Offers = append(queue.Offers[:i], queue.Offers[i+1:]...)
			break
		}
	}
	kv = append(kv, action.saveQueue(queue))

	maker.Status = pty.DiceOfferStatusMatched
	maker.GameId = game.GameId
	offer.Status = pty.DiceOfferStatusMatched
	offer.GameId = game.GameId
	acc.OpenGames++

	makerAcc, err := readAccount(action.db, maker.Addr)
	if err != nil {
		dlog.Error("OfferBet.makerAccount", "addr", maker.Addr, "err", err)
		return nil, pty.ErrDiceGameCorrupt
	}
	makerAcc.OpenOffers--
	makerAcc.OpenGames++

	kv = append(kv, action.saveKV(offerKey(maker.Commitment), maker))
	kv = append(kv, action.saveKV(offerKey(offer.Commitment), offer))
	kv = append(kv, action.saveKV(accountKey(makerAcc.Addr), makerAcc))
	kv = append(kv, action.saveKV(accountKey(acc.Addr), acc))
	kv = append(kv, action.saveKV(gameKey(game.GameId), game))
	kv = append(kv, action.saveKV(globalKey(), global))

	logs = append(logs, offerLog(pty.TyLogDiceOfferBet, offer, 0))
	logs = append(logs, offerLog(pty.TyLogDiceOfferMatch, maker, pty.DiceOfferStatusOpen))
	logs = append(logs, &types.ReceiptLog{
		Ty: pty.TyLogDiceGameStart,
		Log: types.Encode(&pty.ReceiptDiceGame{
			GameId:      game.GameId,
			Stake:       game.Stake,
			Status:      game.Status,
			Player1:     maker.Addr,
			Player2:     offer.Addr,
			Commitment1: common.ToHex(maker.Commitment),
			Commitment2: common.ToHex(offer.Commitment),
		}),
	})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//firstMatchable 返回队列中编号最小的他人报价
func (action *Action) firstMatchable(queue *pty.DiceStakeQueue) *pty.DiceOffer {
	for _, rec := range queue.Offers {
		offer, err := readOffer(action.db, rec.Commitment)
		if err != nil || offer.Status != pty.DiceOfferStatusOpen {
			dlog.Error("firstMatchable bad queue entry", "offerId", rec.OfferId, "err", err)
			continue
		}
		if offer.Addr == action.fromaddr {
			continue
		}
		return offer
	}
	return nil
}

func (action *Action) CancelOffer(cancel *pty.DiceCancelOffer) (*types.Receipt, error) {
	offer, err := readOffer(action.db, cancel.GetCommitment())
	if err == types.ErrNotFound {
		return nil, pty.ErrDiceOfferNotFound
	} else if err != nil {
		return nil, err
	}
	if offer.Addr != action.fromaddr {
		return nil, pty.ErrDiceOfferAddr
	}
	if offer.Status != pty.DiceOfferStatusOpen {
		return nil, pty.ErrDiceOfferMatched
	}
	acc, err := readAccount(action.db, action.fromaddr)
	if err != nil {
		dlog.Error("CancelOffer.readAccount", "addr", action.fromaddr, "err", err)
		return nil, pty.ErrDiceGameCorrupt
	}

	queue := action.readQueue(offer.Stake)
	for i, rec := range queue.Offers {
		if rec.OfferId == offer.OfferId {
			queue.Offers = append(queue.Offers[:i], queue.Offers[i+1:]...)
			break
		}
	}
	acc.Balance += offer.Stake
	acc.OpenOffers--

	var kv []*types.KeyValue
	kv = append(kv, action.saveQueue(queue))
	kv = append(kv, action.delKV(offerKey(offer.Commitment)))
	kv = append(kv, action.saveKV(accountKey(acc.Addr), acc))

	logs := []*types.ReceiptLog{offerLog(pty.TyLogDiceCancelOffer, offer, pty.DiceOfferStatusOpen)}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) Reveal(reveal *pty.DiceReveal) (*types.Receipt, error) {
	if len(reveal.GetCommitment()) != commitmentSize {
		return nil, types.ErrInvalidParam
	}
	//秘密必须是32字节，短秘密即使摘要吻合也拒绝，否则对局会留下空揭示值
	if len(reveal.GetSecret()) != commitmentSize {
		return nil, pty.ErrDiceInvalidReveal
	}
	if !bytes.Equal(common.Sha256(reveal.GetSecret()), reveal.Commitment) {
		return nil, pty.ErrDiceInvalidReveal
	}
	offer, err := readOffer(action.db, reveal.Commitment)
	if err == types.ErrNotFound {
		return nil, pty.ErrDiceOfferNotFound
	} else if err != nil {
		return nil, err
	}
	if offer.GameId == 0 {
		return nil, pty.ErrDiceNotInGame
	}
	game, err := readGame(action.db, offer.GameId)
	if err != nil {
		dlog.Error("Reveal.readGame", "gameId", offer.GameId, "err", err)
		return nil, pty.ErrDiceGameCorrupt
	}

	var current, other *pty.DicePlayer
	switch {
	case bytes.Equal(game.Player1.GetCommitment(), reveal.Commitment):
		current, other = game.Player1, game.Player2
	case bytes.Equal(game.Player2.GetCommitment(), reveal.Commitment):
		current, other = game.Player2, game.Player1
	default:
		dlog.Error("Reveal commitment not in game", "gameId", game.GameId)
		return nil, pty.ErrDiceGameCorrupt
	}
	if len(current.Reveal) != 0 {
		return nil, pty.ErrDiceAlreadyRevealed
	}
	current.Reveal = reveal.Secret

	if len(other.Reveal) != 0 {
		//双方均已揭示，立即结算
		return action.settle(game, Player1Wins(game.Player1, game.Player2), pty.TyLogDiceGameSettle)
	}

	prevStatus := game.Status
	game.Status = pty.DiceGameStatusOneRevealed
	game.Deadline = action.blocktime + GetConfValue(action.cfg, action.db, ConfNameRevealWindow, RevealWindow)

	kv := []*types.KeyValue{action.saveKV(gameKey(game.GameId), game)}
	logs := []*types.ReceiptLog{action.gameLog(pty.TyLogDiceReveal, game, prevStatus, "", "")}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) ClaimExpired(claim *pty.DiceClaimExpired) (*types.Receipt, error) {
	game, err := readGame(action.db, claim.GetGameId())
	if err == types.ErrNotFound {
		return nil, pty.ErrDiceGameNotFound
	} else if err != nil {
		return nil, err
	}
	if game.Deadline == 0 || action.blocktime <= game.Deadline {
		return nil, pty.ErrDiceGameNotExpired
	}
	player1Revealed := len(game.Player1.GetReveal()) != 0
	player2Revealed := len(game.Player2.GetReveal()) != 0
	if player1Revealed == player2Revealed {
		return nil, pty.ErrDiceGameCorrupt
	}
	//超时后已揭示的一方直接获胜
	return action.settle(game, player1Revealed, pty.TyLogDiceClaimExpired)
}

//settle 唯一的清理路径：派彩、计数、回收空账户、删除对局和两笔报价
func (action *Action) settle(game *pty.DiceGame, player1Wins bool, logTy int32) (*types.Receipt, error) {
	offer1, err := readOffer(action.db, game.Player1.Commitment)
	if err != nil {
		dlog.Error("settle.readOffer player1", "gameId", game.GameId, "err", err)
		return nil, pty.ErrDiceGameCorrupt
	}
	offer2, err := readOffer(action.db, game.Player2.Commitment)
	if err != nil {
		dlog.Error("settle.readOffer player2", "gameId", game.GameId, "err", err)
		return nil, pty.ErrDiceGameCorrupt
	}
	winnerOffer, loserOffer := offer1, offer2
	if !player1Wins {
		winnerOffer, loserOffer = offer2, offer1
	}

	winnerAcc, err := readAccount(action.db, winnerOffer.Addr)
	if err != nil {
		return nil, pty.ErrDiceGameCorrupt
	}
	loserAcc, err := readAccount(action.db, loserOffer.Addr)
	if err != nil {
		return nil, pty.ErrDiceGameCorrupt
	}

	receipt, err := action.coinsAccount.ExecTransferFrozen(loserOffer.Addr, winnerOffer.Addr, action.execaddr, game.Stake)
	if err != nil {
		dlog.Error("settle.ExecTransferFrozen", "gameId", game.GameId, "loser", loserOffer.Addr, "err", err)
		return nil, err
	}
	//转来的彩金落在胜方的活动余额上，重新冻结，保持冻结额始终覆盖合约内余额
	receiptFrozen, err := action.coinsAccount.ExecFrozen(winnerOffer.Addr, action.execaddr, game.Stake)
	if err != nil {
		dlog.Error("settle.ExecFrozen", "gameId", game.GameId, "winner", winnerOffer.Addr, "err", err)
		return nil, err
	}
	receipt.KV = append(receipt.KV, receiptFrozen.KV...)
	receipt.Logs = append(receipt.Logs, receiptFrozen.Logs...)

	winnerAcc.Balance += 2 * game.Stake
	winnerAcc.OpenGames--
	loserAcc.OpenGames--

	kv := receipt.KV
	logs := receipt.Logs
	kv = append(kv, action.saveKV(accountKey(winnerAcc.Addr), winnerAcc))
	if isEmpty(loserAcc) {
		kv = append(kv, action.delKV(accountKey(loserAcc.Addr)))
	} else {
		kv = append(kv, action.saveKV(accountKey(loserAcc.Addr), loserAcc))
	}

	kv = append(kv, action.delKV(offerKey(offer1.Commitment)))
	kv = append(kv, action.delKV(offerKey(offer2.Commitment)))
	kv = append(kv, action.delKV(gameKey(game.GameId)))

	prevStatus := game.Status
	game.Status = pty.DiceGameStatusSettled
	r := &pty.ReceiptDiceGame{
		GameId:        game.GameId,
		Stake:         game.Stake,
		Status:        game.Status,
		PrevStatus:    prevStatus,
		Player1:       offer1.Addr,
		Player2:       offer2.Addr,
		Winner:        winnerOffer.Addr,
		Loser:         loserOffer.Addr,
		Deadline:      game.Deadline,
		WinnerOfferId: winnerOffer.OfferId,
		LoserOfferId:  loserOffer.OfferId,
		Commitment1:   common.ToHex(offer1.Commitment),
		Commitment2:   common.ToHex(offer2.Commitment),
	}
	logs = append(logs, &types.ReceiptLog{Ty: logTy, Log: types.Encode(r)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

func (action *Action) gameLog(logTy int32, game *pty.DiceGame, prevStatus int32, winner, loser string) *types.ReceiptLog {
	r := &pty.ReceiptDiceGame{
		GameId:     game.GameId,
		Stake:      game.Stake,
		Status:     game.Status,
		PrevStatus: prevStatus,
		Winner:     winner,
		Loser:      loser,
		Deadline:   game.Deadline,
	}
	return &types.ReceiptLog{Ty: logTy, Log: types.Encode(r)}
}

func GetConfValue(cfg *types.Chain33Config, db dbm.KV, key string, defaultValue int64) int64 {
	var item types.ConfigItem
	value, err := getManageKey(key, db, cfg)
	if err != nil {
		return defaultValue
	}
	if value != nil {
		err = types.Decode(value, &item)
		if err != nil {
			dlog.Error("dicedb GetConfValue", "decode db key", key, "err", err.Error())
			return defaultValue
		}
	}
	values := item.GetArr().GetValue()
	if len(values) == 0 {
		return defaultValue
	}
	//取数组最后一位，作为最新配置项的值
	v, err := strconv.ParseInt(values[len(values)-1], 10, 64)
	if err != nil {
		dlog.Error("dicedb GetConfValue", "parse config value", key, "err", err.Error())
		return defaultValue
	}
	return v
}

func getManageKey(key string, db dbm.KV, cfg *types.Chain33Config) ([]byte, error) {
	manageKey := types.ManageKey(key)
	value, err := db.Get([]byte(manageKey))
	if err != nil {
		if cfg.IsPara() { //平行链只有一种存储方式
			return nil, err
		}
		return getConfigKey(key, db)
	}
	return value, nil
}

func getConfigKey(key string, db dbm.KV) ([]byte, error) {
	configKey := types.ConfigKey(key)
	value, err := db.Get([]byte(configKey))
	if err != nil {
		return nil, err
	}
	return value, nil
}
