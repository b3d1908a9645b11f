package executor

/*
dice 是一个点对点的掷骰子对赌合约。

玩家先充值到合约内账户，再以承诺值挂单押注；两笔等额押注撮合成一局，
双方揭示秘密后按摘要比大小分胜负，超时未揭示的一方判负。
*/

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

var dlog = log.New("module", "execs.dice")
var driverName = pty.DiceX

func Init(name string, cfg *types.Chain33Config, sub []byte) {
	drivers.Register(cfg, GetName(), newDice, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

//InitExecType 初始化过程比较重量级，有很多reflect, 所以弄成全局的
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Dice{}))
}

func GetName() string {
	return newDice().GetName()
}

type Dice struct {
	drivers.DriverBase
}

func newDice() drivers.Driver {
	d := &Dice{}
	d.SetChild(d)
	d.SetExecutorType(types.LoadExecutorType(driverName))
	return d
}

func (d *Dice) GetDriverName() string {
	return driverName
}
