package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

type Jrpc struct {
	cli *channelClient
}

type Grpc struct {
	*channelClient
}

type channelClient struct {
	rpctypes.ChannelClient
}

func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	grpc := &Grpc{channelClient: cli}
	cli.Init(name, s, &Jrpc{cli: cli}, grpc)
	pty.RegisterDiceServer(s.GRPC(), grpc)
}
