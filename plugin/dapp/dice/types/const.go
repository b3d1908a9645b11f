package types

//dice action ty
const (
	DiceActionDeposit = iota + 1
	DiceActionWithdraw
	DiceActionOfferBet
	DiceActionCancelOffer
	DiceActionReveal
	DiceActionClaimExpired
)

const (
	//log for dice
	TyLogDiceDeposit      = 841
	TyLogDiceWithdraw     = 842
	TyLogDiceOfferBet     = 843
	TyLogDiceCancelOffer  = 844
	TyLogDiceOfferMatch   = 845
	TyLogDiceGameStart    = 846
	TyLogDiceReveal       = 847
	TyLogDiceClaimExpired = 848
	TyLogDiceGameSettle   = 849
)

//offer status
const (
	DiceOfferStatusOpen = iota + 1
	DiceOfferStatusMatched
)

//game status
const (
	DiceGameStatusAwaiting = iota + 1
	DiceGameStatusOneRevealed
	DiceGameStatusSettled
)

//包的名字可以通过配置文件来配置
//建议用github的组织名称，或者用户名字开头, 再加上自己的插件的名字
var (
	JRPCName   = "Dice"
	DiceX      = "dice"
	ExecerDice = []byte(DiceX)
)

const (
	//查询方法名
	FuncNameQueryAccountByAddr   = "QueryAccountByAddr"
	FuncNameQueryOfferByCommit   = "QueryOfferByCommitment"
	FuncNameQueryOpenOffersByBet = "QueryOpenOffersByStake"
	FuncNameQueryOffersByAddr    = "QueryOffersByAddr"
	FuncNameQueryGameById        = "QueryGameById"
	FuncNameQueryGamesByStatus   = "QueryGamesByStatus"
	FuncNameQueryGamesByAddr     = "QueryGamesByAddr"
)
