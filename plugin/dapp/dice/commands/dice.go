package commands

import (
	jsonrpc "github.com/33cn/chain33/rpc/jsonclient"
	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
	"github.com/spf13/cobra"
)

//rpcQuery Chain33.Query请求参数
type rpcQuery struct {
	Execer   string      `json:"execer"`
	FuncName string      `json:"funcName"`
	Payload  interface{} `json:"payload"`
}

//DiceCmd 骰子游戏命令行
func DiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "dice game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		DiceDepositRawTxCmd(),
		DiceWithdrawRawTxCmd(),
		DiceBetRawTxCmd(),
		DiceCancelRawTxCmd(),
		DiceRevealRawTxCmd(),
		DiceClaimRawTxCmd(),
		DiceQueryAccountCmd(),
		DiceQueryOfferCmd(),
		DiceQueryOpenOffersCmd(),
		DiceQueryOffersByAddrCmd(),
		DiceQueryGameCmd(),
		DiceQueryGamesByStatusCmd(),
		DiceQueryGamesByAddrCmd(),
	)

	return cmd
}

func DiceDepositRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit coins into the dice game",
		Run:   diceDeposit,
	}
	cmd.Flags().Float64P("amount", "a", 0, "deposit amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func diceDeposit(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	amount, _ := cmd.Flags().GetFloat64("amount")

	params := &pty.DiceDepositTxReq{
		Amount: int64(amount*1e4) * 1e4,
	}

	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "dice.DiceDepositTx", params, &res)
	ctx.RunWithoutMarshal()
}

func DiceWithdrawRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from the dice game",
		Run:   diceWithdraw,
	}
	cmd.Flags().Float64P("amount", "a", 0, "withdraw amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func diceWithdraw(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	amount, _ := cmd.Flags().GetFloat64("amount")

	params := &pty.DiceWithdrawTxReq{
		Amount: int64(amount*1e4) * 1e4,
	}

	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "dice.DiceWithdrawTx", params, &res)
	ctx.RunWithoutMarshal()
}

func DiceBetRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Place a bet offer with a commitment",
		Run:   diceBet,
	}
	cmd.Flags().Float64P("stake", "s", 0, "stake amount")
	cmd.MarkFlagRequired("stake")
	cmd.Flags().StringP("commitment", "c", "", "sha256 commitment in hex")
	cmd.MarkFlagRequired("commitment")
	return cmd
}

func diceBet(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	stake, _ := cmd.Flags().GetFloat64("stake")
	commitment, _ := cmd.Flags().GetString("commitment")

	params := &pty.DiceOfferBetTxReq{
		Stake:      int64(stake*1e4) * 1e4,
		Commitment: commitment,
	}

	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "dice.DiceOfferBetTx", params, &res)
	ctx.RunWithoutMarshal()
}

func DiceCancelRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an unmatched bet offer",
		Run:   diceCancel,
	}
	cmd.Flags().StringP("commitment", "c", "", "commitment of the offer in hex")
	cmd.MarkFlagRequired("commitment")
	return cmd
}

func diceCancel(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	commitment, _ := cmd.Flags().GetString("commitment")

	params := &pty.DiceCancelOfferTxReq{
		Commitment: commitment,
	}

	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "dice.DiceCancelOfferTx", params, &res)
	ctx.RunWithoutMarshal()
}

func DiceRevealRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the secret of a matched offer",
		Run:   diceReveal,
	}
	cmd.Flags().StringP("commitment", "c", "", "commitment of the offer in hex")
	cmd.MarkFlagRequired("commitment")
	cmd.Flags().StringP("secret", "s", "", "secret in hex, sha256(secret) must equal commitment")
	cmd.MarkFlagRequired("secret")
	return cmd
}

func diceReveal(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	commitment, _ := cmd.Flags().GetString("commitment")
	secret, _ := cmd.Flags().GetString("secret")

	params := &pty.DiceRevealTxReq{
		Commitment: commitment,
		Secret:     secret,
	}

	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "dice.DiceRevealTx", params, &res)
	ctx.RunWithoutMarshal()
}

func DiceClaimRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim an expired game after the reveal deadline",
		Run:   diceClaim,
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func diceClaim(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetInt64("gameId")

	params := &pty.DiceClaimExpiredTxReq{
		GameId: gameID,
	}

	var res string
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "dice.DiceClaimExpiredTx", params, &res)
	ctx.RunWithoutMarshal()
}

func DiceQueryAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Query dice account by address",
		Run:   diceQueryAccount,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func diceQueryAccount(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")

	var params rpcQuery
	params.Execer = pty.DiceX
	params.FuncName = pty.FuncNameQueryAccountByAddr
	params.Payload = &pty.ReqDiceAddr{Addr: addr}

	var res pty.ReplyDiceAccount
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func DiceQueryOfferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Query a bet offer by commitment",
		Run:   diceQueryOffer,
	}
	cmd.Flags().StringP("commitment", "c", "", "commitment in hex")
	cmd.MarkFlagRequired("commitment")
	return cmd
}

func diceQueryOffer(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	commitment, _ := cmd.Flags().GetString("commitment")

	var params rpcQuery
	params.Execer = pty.DiceX
	params.FuncName = pty.FuncNameQueryOfferByCommit
	params.Payload = &pty.ReqDiceOffer{Commitment: commitment}

	var res pty.ReplyDiceOffer
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func DiceQueryOpenOffersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open_offers",
		Short: "List open offers at a given stake",
		Run:   diceQueryOpenOffers,
	}
	cmd.Flags().Float64P("stake", "s", 0, "stake amount")
	cmd.MarkFlagRequired("stake")
	cmd.Flags().Int64P("startId", "i", 0, "offer id to page from")
	cmd.Flags().Int32P("count", "n", 0, "max records, 0 for default")
	return cmd
}

func diceQueryOpenOffers(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	stake, _ := cmd.Flags().GetFloat64("stake")
	startID, _ := cmd.Flags().GetInt64("startId")
	count, _ := cmd.Flags().GetInt32("count")

	var params rpcQuery
	params.Execer = pty.DiceX
	params.FuncName = pty.FuncNameQueryOpenOffersByBet
	params.Payload = &pty.ReqDiceOffersByStake{
		Stake:   int64(stake*1e4) * 1e4,
		StartId: startID,
		Count:   count,
	}

	var res pty.ReplyDiceOfferList
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func DiceQueryOffersByAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offers",
		Short: "List offers placed by an address",
		Run:   diceQueryOffersByAddr,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int64P("startId", "i", 0, "offer id to page from")
	cmd.Flags().Int32P("count", "n", 0, "max records, 0 for default")
	return cmd
}

func diceQueryOffersByAddr(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	startID, _ := cmd.Flags().GetInt64("startId")
	count, _ := cmd.Flags().GetInt32("count")

	var params rpcQuery
	params.Execer = pty.DiceX
	params.FuncName = pty.FuncNameQueryOffersByAddr
	params.Payload = &pty.ReqDiceOffersByAddr{Addr: addr, StartId: startID, Count: count}

	var res pty.ReplyDiceOfferList
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func DiceQueryGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Query a game by id",
		Run:   diceQueryGame,
	}
	cmd.Flags().Int64P("gameId", "g", 0, "game id")
	cmd.MarkFlagRequired("gameId")
	return cmd
}

func diceQueryGame(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetInt64("gameId")

	var params rpcQuery
	params.Execer = pty.DiceX
	params.FuncName = pty.FuncNameQueryGameById
	params.Payload = &pty.ReqDiceGame{GameId: gameID}

	var res pty.ReplyDiceGame
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func DiceQueryGamesByStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games_by_status",
		Short: "List games in a given status",
		Run:   diceQueryGamesByStatus,
	}
	cmd.Flags().Int32P("status", "t", 0, "1:awaiting 2:one revealed 3:settled")
	cmd.MarkFlagRequired("status")
	cmd.Flags().Int64P("startId", "i", 0, "game id to page from")
	cmd.Flags().Int32P("count", "n", 0, "max records, 0 for default")
	return cmd
}

func diceQueryGamesByStatus(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetInt32("status")
	startID, _ := cmd.Flags().GetInt64("startId")
	count, _ := cmd.Flags().GetInt32("count")

	var params rpcQuery
	params.Execer = pty.DiceX
	params.FuncName = pty.FuncNameQueryGamesByStatus
	params.Payload = &pty.ReqDiceGamesByStatus{Status: status, StartId: startID, Count: count}

	var res pty.ReplyDiceGameList
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}

func DiceQueryGamesByAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List games joined by an address",
		Run:   diceQueryGamesByAddr,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int64P("startId", "i", 0, "game id to page from")
	cmd.Flags().Int32P("count", "n", 0, "max records, 0 for default")
	return cmd
}

func diceQueryGamesByAddr(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	startID, _ := cmd.Flags().GetInt64("startId")
	count, _ := cmd.Flags().GetInt32("count")

	var params rpcQuery
	params.Execer = pty.DiceX
	params.FuncName = pty.FuncNameQueryGamesByAddr
	params.Payload = &pty.ReqDiceGamesByAddr{Addr: addr, StartId: startID, Count: count}

	var res pty.ReplyDiceGameList
	ctx := jsonrpc.NewRPCCtx(rpcLaddr, "Chain33.Query", params, &res)
	ctx.Run()
}
