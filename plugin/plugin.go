package plugin

import (
	_ "github.com/33cn/plugin/plugin/dapp/init" //auto gen
)
