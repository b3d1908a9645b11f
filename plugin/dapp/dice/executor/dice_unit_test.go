package executor

import (
	"math/rand"
	"testing"

	apimocks "github.com/33cn/chain33/client/mocks"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
	"github.com/stretchr/testify/require"
)

var (
	r = rand.New(rand.NewSource(types.Now().UnixNano()))

	cfg *types.Chain33Config

	addrA string
	privA crypto.PrivKey
	addrB string
	privB crypto.PrivKey

	addrexec string
	dice     *Dice

	//秘密必须是32字节，这里用摘要值当秘密
	secretA = common.Sha256([]byte("alice"))
	secretB = common.Sha256([]byte("bob"))
	secretC = common.Sha256([]byte("carol"))
	secretD = common.Sha256([]byte("dave"))
	secretE = common.Sha256([]byte("erin"))
	secretF = common.Sha256([]byte("frank"))
)

const (
	fundAmount    = int64(10e8)
	depositAmount = int64(2e8)
	stakeAmount   = int64(5e7)
	txFee         = int64(1e6)
	startTime     = int64(1600000000)
)

func TestDiceInit(t *testing.T) {
	cfg = types.NewChain33Config(types.GetDefaultCfgstring())
	Init(pty.DiceX, cfg, nil)

	addrA, privA = util.Genaddress()
	addrB, privB = util.Genaddress()
	addrexec = address.ExecAddress(pty.DiceX)

	api := new(apimocks.QueueProtocolAPI)
	api.On("GetConfig").Return(cfg)

	_, stateDB, kvdb := util.CreateTestDB()
	d := newDice().(*Dice)
	d.SetAPI(api)
	d.SetStateDB(stateDB)
	d.SetLocalDB(kvdb)
	d.SetEnv(100, startTime, 1)
	dice = d

	//预置双方的合约内coins可用余额
	acc := dice.GetCoinsAccount().LoadExecAccount(addrA, addrexec)
	acc.Balance = fundAmount
	dice.GetCoinsAccount().SaveExecAccount(addrexec, acc)

	acc = dice.GetCoinsAccount().LoadExecAccount(addrB, addrexec)
	acc.Balance = fundAmount
	dice.GetCoinsAccount().SaveExecAccount(addrexec, acc)
}

func TestDiceDeposit(t *testing.T) {
	receipt, err := dice.Exec(depositTx(privA, depositAmount), 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)

	_, err = dice.Exec(depositTx(privB, depositAmount), 0)
	require.NoError(t, err)

	acc, err := readAccount(dice.GetStateDB(), addrA)
	require.NoError(t, err)
	require.Equal(t, depositAmount, acc.Balance)
	require.Equal(t, int64(0), acc.OpenOffers)

	frozen := dice.GetCoinsAccount().LoadExecAccount(addrA, addrexec).Frozen
	require.Equal(t, depositAmount, frozen)
}

func TestDiceDepositBadAmount(t *testing.T) {
	_, err := dice.Exec(depositTx(privA, 0), 0)
	require.Equal(t, types.ErrAmount, err)
}

func TestDiceWithdrawNoAccount(t *testing.T) {
	_, privC := util.Genaddress()
	_, err := dice.Exec(withdrawTx(privC, depositAmount), 0)
	require.Equal(t, pty.ErrDiceAccountNotFound, err)
}

func TestDiceOfferBet(t *testing.T) {
	receipt, err := dice.Exec(offerBetTx(privA, stakeAmount, commitment(secretA)), 0)
	require.NoError(t, err)
	require.Equal(t, int32(pty.TyLogDiceOfferBet), receipt.Logs[0].Ty)

	offer, err := readOffer(dice.GetStateDB(), commitment(secretA))
	require.NoError(t, err)
	require.Equal(t, int64(1), offer.OfferId)
	require.Equal(t, addrA, offer.Addr)
	require.Equal(t, int32(pty.DiceOfferStatusOpen), offer.Status)

	acc, err := readAccount(dice.GetStateDB(), addrA)
	require.NoError(t, err)
	require.Equal(t, depositAmount-stakeAmount, acc.Balance)
	require.Equal(t, int64(1), acc.OpenOffers)
}

func TestDiceOfferBetDuplicate(t *testing.T) {
	_, err := dice.Exec(offerBetTx(privB, stakeAmount, commitment(secretA)), 0)
	require.Equal(t, pty.ErrDiceDuplicateCommit, err)
}

func TestDiceOfferBetInsufficient(t *testing.T) {
	_, err := dice.Exec(offerBetTx(privA, 100*depositAmount, commitment(secretC)), 0)
	require.Equal(t, pty.ErrDiceInsufficientFunds, err)
}

//没有充值过的地址不能挂单
func TestDiceOfferBetNoAccount(t *testing.T) {
	_, priv := util.Genaddress()
	_, err := dice.Exec(offerBetTx(priv, stakeAmount, commitment(common.Sha256([]byte("mallory")))), 0)
	require.Equal(t, pty.ErrDiceAccountNotFound, err)
}

//同一地址的报价不能互相撮合，只能排在队列里
func TestDiceNoSelfMatch(t *testing.T) {
	_, err := dice.Exec(offerBetTx(privA, stakeAmount, commitment(secretC)), 0)
	require.NoError(t, err)

	offer, err := readOffer(dice.GetStateDB(), commitment(secretC))
	require.NoError(t, err)
	require.Equal(t, int32(pty.DiceOfferStatusOpen), offer.Status)
	require.Equal(t, int64(0), offer.GameId)

	acc, err := readAccount(dice.GetStateDB(), addrA)
	require.NoError(t, err)
	require.Equal(t, int64(2), acc.OpenOffers)
}

func TestDiceCancelOffer(t *testing.T) {
	//他人不能撤单
	_, err := dice.Exec(cancelOfferTx(privB, commitment(secretC)), 0)
	require.Equal(t, pty.ErrDiceOfferAddr, err)

	_, err = dice.Exec(cancelOfferTx(privA, commitment(secretC)), 0)
	require.NoError(t, err)

	_, err = readOffer(dice.GetStateDB(), commitment(secretC))
	require.Equal(t, types.ErrNotFound, err)

	acc, err := readAccount(dice.GetStateDB(), addrA)
	require.NoError(t, err)
	require.Equal(t, depositAmount-stakeAmount, acc.Balance)
	require.Equal(t, int64(1), acc.OpenOffers)
}

func TestDiceCancelNotFound(t *testing.T) {
	_, err := dice.Exec(cancelOfferTx(privA, commitment(secretD)), 0)
	require.Equal(t, pty.ErrDiceOfferNotFound, err)
}

//等额报价按编号先后撮合成一局
func TestDiceMatch(t *testing.T) {
	receipt, err := dice.Exec(offerBetTx(privB, stakeAmount, commitment(secretB)), 0)
	require.NoError(t, err)
	require.Equal(t, 3, len(receipt.Logs))
	require.Equal(t, int32(pty.TyLogDiceGameStart), receipt.Logs[2].Ty)

	game, err := readGame(dice.GetStateDB(), 1)
	require.NoError(t, err)
	require.Equal(t, int32(pty.DiceGameStatusAwaiting), game.Status)
	require.Equal(t, stakeAmount, game.Stake)
	require.Equal(t, commitment(secretA), game.Player1.Commitment)
	require.Equal(t, commitment(secretB), game.Player2.Commitment)

	offer, err := readOffer(dice.GetStateDB(), commitment(secretA))
	require.NoError(t, err)
	require.Equal(t, int32(pty.DiceOfferStatusMatched), offer.Status)
	require.Equal(t, int64(1), offer.GameId)

	accA, err := readAccount(dice.GetStateDB(), addrA)
	require.NoError(t, err)
	require.Equal(t, int64(0), accA.OpenOffers)
	require.Equal(t, int64(1), accA.OpenGames)

	accB, err := readAccount(dice.GetStateDB(), addrB)
	require.NoError(t, err)
	require.Equal(t, int64(1), accB.OpenGames)
	require.Equal(t, depositAmount-stakeAmount, accB.Balance)
}

func TestDiceMatchedOfferCannotCancel(t *testing.T) {
	_, err := dice.Exec(cancelOfferTx(privA, commitment(secretA)), 0)
	require.Equal(t, pty.ErrDiceOfferMatched, err)
}

func TestDiceRevealWrongSecret(t *testing.T) {
	_, err := dice.Exec(revealTx(privA, commitment(secretA), secretB), 0)
	require.Equal(t, pty.ErrDiceInvalidReveal, err)
}

func TestDiceFirstReveal(t *testing.T) {
	receipt, err := dice.Exec(revealTx(privA, commitment(secretA), secretA), 0)
	require.NoError(t, err)
	require.Equal(t, int32(pty.TyLogDiceReveal), receipt.Logs[0].Ty)

	game, err := readGame(dice.GetStateDB(), 1)
	require.NoError(t, err)
	require.Equal(t, int32(pty.DiceGameStatusOneRevealed), game.Status)
	require.Equal(t, startTime+RevealWindow, game.Deadline)
	require.Equal(t, secretA, game.Player1.Reveal)
}

func TestDiceRevealTwice(t *testing.T) {
	_, err := dice.Exec(revealTx(privA, commitment(secretA), secretA), 0)
	require.Equal(t, pty.ErrDiceAlreadyRevealed, err)
}

func TestDiceClaimBeforeDeadline(t *testing.T) {
	_, err := dice.Exec(claimExpiredTx(privB, 1), 0)
	require.Equal(t, pty.ErrDiceGameNotExpired, err)
}

//第二次揭示立即结算，胜者通吃两份押注
func TestDiceSecondRevealSettles(t *testing.T) {
	receipt, err := dice.Exec(revealTx(privB, commitment(secretB), secretB), 0)
	require.NoError(t, err)
	lastLog := receipt.Logs[len(receipt.Logs)-1]
	require.Equal(t, int32(pty.TyLogDiceGameSettle), lastLog.Ty)

	var settleLog pty.ReceiptDiceGame
	require.NoError(t, types.Decode(lastLog.Log, &settleLog))

	p1 := &pty.DicePlayer{Commitment: commitment(secretA), Reveal: secretA}
	p2 := &pty.DicePlayer{Commitment: commitment(secretB), Reveal: secretB}
	winner, loser := addrA, addrB
	if !Player1Wins(p1, p2) {
		winner, loser = addrB, addrA
	}
	require.Equal(t, winner, settleLog.Winner)
	require.Equal(t, loser, settleLog.Loser)

	//对局和两笔报价都被清理
	_, err = readGame(dice.GetStateDB(), 1)
	require.Equal(t, types.ErrNotFound, err)
	_, err = readOffer(dice.GetStateDB(), commitment(secretA))
	require.Equal(t, types.ErrNotFound, err)
	_, err = readOffer(dice.GetStateDB(), commitment(secretB))
	require.Equal(t, types.ErrNotFound, err)

	winAcc, err := readAccount(dice.GetStateDB(), winner)
	require.NoError(t, err)
	require.Equal(t, depositAmount+stakeAmount, winAcc.Balance)
	require.Equal(t, int64(0), winAcc.OpenGames)

	loseAcc, err := readAccount(dice.GetStateDB(), loser)
	require.NoError(t, err)
	require.Equal(t, depositAmount-stakeAmount, loseAcc.Balance)
	require.Equal(t, int64(0), loseAcc.OpenGames)

	//冻结总额不变，只在双方之间转移，且始终覆盖各自的合约内余额
	frozenWin := dice.GetCoinsAccount().LoadExecAccount(winner, addrexec).Frozen
	frozenLose := dice.GetCoinsAccount().LoadExecAccount(loser, addrexec).Frozen
	require.Equal(t, depositAmount+stakeAmount, frozenWin)
	require.Equal(t, depositAmount-stakeAmount, frozenLose)
	require.Equal(t, 2*depositAmount, frozenWin+frozenLose)

	//赢来的彩金可以直接提现
	winPriv := privA
	if winner == addrB {
		winPriv = privB
	}
	_, err = dice.Exec(withdrawTx(winPriv, stakeAmount), 0)
	require.NoError(t, err)
	winAcc, err = readAccount(dice.GetStateDB(), winner)
	require.NoError(t, err)
	require.Equal(t, depositAmount, winAcc.Balance)
	require.Equal(t, depositAmount, dice.GetCoinsAccount().LoadExecAccount(winner, addrexec).Frozen)
}

//超时后由已揭示的一方获胜
func TestDiceClaimExpired(t *testing.T) {
	_, err := dice.Exec(offerBetTx(privA, stakeAmount, commitment(secretC)), 0)
	require.NoError(t, err)
	_, err = dice.Exec(offerBetTx(privB, stakeAmount, commitment(secretD)), 0)
	require.NoError(t, err)

	game, err := readGame(dice.GetStateDB(), 2)
	require.NoError(t, err)
	require.Equal(t, commitment(secretC), game.Player1.Commitment)

	_, err = dice.Exec(revealTx(privA, commitment(secretC), secretC), 0)
	require.NoError(t, err)

	//未到截止时间不能判胜负
	_, err = dice.Exec(claimExpiredTx(privB, 2), 0)
	require.Equal(t, pty.ErrDiceGameNotExpired, err)

	dice.SetEnv(101, startTime+RevealWindow+1, 1)
	receipt, err := dice.Exec(claimExpiredTx(privB, 2), 0)
	require.NoError(t, err)
	lastLog := receipt.Logs[len(receipt.Logs)-1]
	require.Equal(t, int32(pty.TyLogDiceClaimExpired), lastLog.Ty)

	var settleLog pty.ReceiptDiceGame
	require.NoError(t, types.Decode(lastLog.Log, &settleLog))
	require.Equal(t, addrA, settleLog.Winner)
	require.Equal(t, addrB, settleLog.Loser)

	_, err = readGame(dice.GetStateDB(), 2)
	require.Equal(t, types.ErrNotFound, err)
}

func TestDiceClaimUnknownGame(t *testing.T) {
	_, err := dice.Exec(claimExpiredTx(privA, 99), 0)
	require.Equal(t, pty.ErrDiceGameNotFound, err)
}

//提净余额后空账户被回收
func TestDiceWithdrawAndCollect(t *testing.T) {
	accB, err := readAccount(dice.GetStateDB(), addrB)
	require.NoError(t, err)
	require.Equal(t, int64(0), accB.OpenOffers)
	require.Equal(t, int64(0), accB.OpenGames)

	_, err = dice.Exec(withdrawTx(privB, accB.Balance+1), 0)
	require.Equal(t, pty.ErrDiceInsufficientFunds, err)

	receipt, err := dice.Exec(withdrawTx(privB, accB.Balance), 0)
	require.NoError(t, err)
	lastLog := receipt.Logs[len(receipt.Logs)-1]
	require.Equal(t, int32(pty.TyLogDiceWithdraw), lastLog.Ty)

	var acctLog pty.ReceiptDiceAccount
	require.NoError(t, types.Decode(lastLog.Log, &acctLog))
	require.True(t, acctLog.Removed)

	_, err = readAccount(dice.GetStateDB(), addrB)
	require.Equal(t, types.ErrNotFound, err)

	require.Equal(t, int64(0), dice.GetCoinsAccount().LoadExecAccount(addrB, addrexec).Frozen)
}

//报价编号和对局编号全局递增，不因删除而复用
func TestDiceGlobalCounters(t *testing.T) {
	_, err := dice.Exec(depositTx(privB, depositAmount), 0)
	require.NoError(t, err)
	_, err = dice.Exec(offerBetTx(privB, stakeAmount, commitment(secretE)), 0)
	require.NoError(t, err)

	offer, err := readOffer(dice.GetStateDB(), commitment(secretE))
	require.NoError(t, err)
	require.Equal(t, int64(6), offer.OfferId)
}

//排队中的报价还没有对手，不能揭示
func TestDiceRevealUnmatchedOffer(t *testing.T) {
	_, err := dice.Exec(revealTx(privB, commitment(secretE), secretE), 0)
	require.Equal(t, pty.ErrDiceNotInGame, err)
}

//短于32字节的秘密即使摘要和承诺值吻合也不能揭示，否则对局会留下空揭示值卡死
func TestDiceRevealShortSecret(t *testing.T) {
	short := []byte("hunch")
	_, err := dice.Exec(offerBetTx(privB, 2*stakeAmount, commitment(short)), 0)
	require.NoError(t, err)
	_, err = dice.Exec(offerBetTx(privA, 2*stakeAmount, commitment(secretF)), 0)
	require.NoError(t, err)

	offer, err := readOffer(dice.GetStateDB(), commitment(short))
	require.NoError(t, err)
	require.Equal(t, int32(pty.DiceOfferStatusMatched), offer.Status)

	_, err = dice.Exec(revealTx(privB, commitment(short), short), 0)
	require.Equal(t, pty.ErrDiceInvalidReveal, err)

	//空秘密同样被拒绝
	_, err = dice.Exec(revealTx(privB, commitment(nil), nil), 0)
	require.Equal(t, pty.ErrDiceInvalidReveal, err)

	game, err := readGame(dice.GetStateDB(), offer.GameId)
	require.NoError(t, err)
	require.Equal(t, int32(pty.DiceGameStatusAwaiting), game.Status)
	require.Equal(t, 0, len(game.Player1.Reveal))
	require.Equal(t, 0, len(game.Player2.Reveal))
}

func TestDiceLocalIndex(t *testing.T) {
	d := dice

	addrC, privC := util.Genaddress()
	acc := dice.GetCoinsAccount().LoadExecAccount(addrC, addrexec)
	acc.Balance = fundAmount
	dice.GetCoinsAccount().SaveExecAccount(addrexec, acc)

	_, err := dice.Exec(depositTx(privC, depositAmount), 0)
	require.NoError(t, err)

	secret := common.Sha256([]byte("grace"))
	tx := offerBetTx(privC, 3*stakeAmount, commitment(secret))
	receipt, err := dice.Exec(tx, 0)
	require.NoError(t, err)

	set, err := d.ExecLocal_OfferBet(nil, tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, len(set.KV))
	forward := make(map[string]bool)
	for _, kv := range set.KV {
		forward[string(kv.Key)] = true
		d.GetLocalDB().Set(kv.Key, kv.Value)
	}

	reply, err := d.Query_QueryOpenOffersByStake(&pty.ReqDiceOffersByStake{Stake: 3 * stakeAmount})
	require.NoError(t, err)
	offers := reply.(*pty.ReplyDiceOfferList).Offers
	require.Equal(t, 1, len(offers))
	require.Equal(t, addrC, offers[0].Addr)

	//回滚恰好把正向写入的键全部置空
	set, err = d.ExecDelLocal_OfferBet(nil, tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, len(set.KV))
	for _, kv := range set.KV {
		require.True(t, forward[string(kv.Key)])
		require.Nil(t, kv.Value)
	}
}

func TestDiceQueryState(t *testing.T) {
	d := dice

	reply, err := d.Query_QueryAccountByAddr(&pty.ReqDiceAddr{Addr: addrA})
	require.NoError(t, err)
	require.Equal(t, addrA, reply.(*pty.ReplyDiceAccount).Account.Addr)

	_, err = d.Query_QueryGameById(&pty.ReqDiceGame{GameId: 1})
	require.Equal(t, types.ErrNotFound, err)

	_, err = d.Query_QueryOfferByCommitment(&pty.ReqDiceOffer{Commitment: "not hex"})
	require.Equal(t, types.ErrInvalidParam, err)
}

//胜负只由双方的承诺值和揭示值决定，重复计算结果不变
func TestDicePlayer1WinsDeterministic(t *testing.T) {
	p1 := &pty.DicePlayer{Commitment: commitment(secretA), Reveal: secretA}
	p2 := &pty.DicePlayer{Commitment: commitment(secretB), Reveal: secretB}
	first := Player1Wins(p1, p2)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Player1Wins(p1, p2))
	}
	swapped := Player1Wins(p2, p1)
	require.Equal(t, swapped, Player1Wins(p2, p1))
}

func commitment(secret []byte) []byte {
	return common.Sha256(secret)
}

func signedTx(action *pty.DiceAction, priv crypto.PrivKey) *types.Transaction {
	tx := &types.Transaction{
		Execer:  pty.ExecerDice,
		Payload: types.Encode(action),
		Fee:     txFee,
		To:      addrexec,
	}
	tx.Nonce = r.Int63()
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func depositTx(priv crypto.PrivKey, amount int64) *types.Transaction {
	action := &pty.DiceAction{
		Ty:    pty.DiceActionDeposit,
		Value: &pty.DiceAction_Deposit{Deposit: &pty.DiceDeposit{Amount: amount}},
	}
	return signedTx(action, priv)
}

func withdrawTx(priv crypto.PrivKey, amount int64) *types.Transaction {
	action := &pty.DiceAction{
		Ty:    pty.DiceActionWithdraw,
		Value: &pty.DiceAction_Withdraw{Withdraw: &pty.DiceWithdraw{Amount: amount}},
	}
	return signedTx(action, priv)
}

func offerBetTx(priv crypto.PrivKey, stake int64, commitment []byte) *types.Transaction {
	action := &pty.DiceAction{
		Ty:    pty.DiceActionOfferBet,
		Value: &pty.DiceAction_OfferBet{OfferBet: &pty.DiceOfferBet{Stake: stake, Commitment: commitment}},
	}
	return signedTx(action, priv)
}

func cancelOfferTx(priv crypto.PrivKey, commitment []byte) *types.Transaction {
	action := &pty.DiceAction{
		Ty:    pty.DiceActionCancelOffer,
		Value: &pty.DiceAction_CancelOffer{CancelOffer: &pty.DiceCancelOffer{Commitment: commitment}},
	}
	return signedTx(action, priv)
}

func revealTx(priv crypto.PrivKey, commitment, secret []byte) *types.Transaction {
	action := &pty.DiceAction{
		Ty:    pty.DiceActionReveal,
		Value: &pty.DiceAction_Reveal{Reveal: &pty.DiceReveal{Commitment: commitment, Secret: secret}},
	}
	return signedTx(action, priv)
}

func claimExpiredTx(priv crypto.PrivKey, gameId int64) *types.Transaction {
	action := &pty.DiceAction{
		Ty:    pty.DiceActionClaimExpired,
		Value: &pty.DiceAction_ClaimExpired{ClaimExpired: &pty.DiceClaimExpired{GameId: gameId}},
	}
	return signedTx(action, priv)
}
