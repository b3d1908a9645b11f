package init

import (
	_ "github.com/33cn/plugin/plugin/dapp/dice" //auto gen
)
