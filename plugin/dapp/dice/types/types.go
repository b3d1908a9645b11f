package types

import (
	"reflect"

	"github.com/33cn/chain33/types"
)

func init() {
	// init executor type
	types.AllowUserExec = append(types.AllowUserExec, ExecerDice)
	types.RegFork(DiceX, InitFork)
	types.RegExec(DiceX, InitExecutor)
}

//InitFork 初始化fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(DiceX, "Enable", 0)
}

//InitExecutor 初始化executor
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(DiceX, NewType(cfg))
}

// exec
type DiceType struct {
	types.ExecTypeBase
}

func NewType(cfg *types.Chain33Config) *DiceType {
	c := &DiceType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

func (t *DiceType) GetName() string {
	return DiceX
}

func (t *DiceType) GetPayload() types.Message {
	return &DiceAction{}
}

func (t *DiceType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Deposit":      DiceActionDeposit,
		"Withdraw":     DiceActionWithdraw,
		"OfferBet":     DiceActionOfferBet,
		"CancelOffer":  DiceActionCancelOffer,
		"Reveal":       DiceActionReveal,
		"ClaimExpired": DiceActionClaimExpired,
	}
}

func (t *DiceType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogDiceDeposit:      {Ty: reflect.TypeOf(ReceiptDiceAccount{}), Name: "LogDiceDeposit"},
		TyLogDiceWithdraw:     {Ty: reflect.TypeOf(ReceiptDiceAccount{}), Name: "LogDiceWithdraw"},
		TyLogDiceOfferBet:     {Ty: reflect.TypeOf(ReceiptDiceOffer{}), Name: "LogDiceOfferBet"},
		TyLogDiceCancelOffer:  {Ty: reflect.TypeOf(ReceiptDiceOffer{}), Name: "LogDiceCancelOffer"},
		TyLogDiceOfferMatch:   {Ty: reflect.TypeOf(ReceiptDiceOffer{}), Name: "LogDiceOfferMatch"},
		TyLogDiceGameStart:    {Ty: reflect.TypeOf(ReceiptDiceGame{}), Name: "LogDiceGameStart"},
		TyLogDiceReveal:       {Ty: reflect.TypeOf(ReceiptDiceGame{}), Name: "LogDiceReveal"},
		TyLogDiceClaimExpired: {Ty: reflect.TypeOf(ReceiptDiceGame{}), Name: "LogDiceClaimExpired"},
		TyLogDiceGameSettle:   {Ty: reflect.TypeOf(ReceiptDiceGame{}), Name: "LogDiceGameSettle"},
	}
}
