package dice

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/33cn/plugin/plugin/dapp/dice/commands"
	"github.com/33cn/plugin/plugin/dapp/dice/executor"
	"github.com/33cn/plugin/plugin/dapp/dice/rpc"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     pty.DiceX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.DiceCmd,
		RPC:      rpc.Init,
	})
}
