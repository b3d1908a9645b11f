package executor

import (
	"fmt"

	pty "github.com/33cn/plugin/plugin/dapp/dice/types"
)

const (
	ListDESC = int32(0)
	ListASC  = int32(1)

	DefaultCount = int64(20)  //默认一次取多少条记录
	MaxCount     = int64(100) //最多取100条

	//从首次揭示开始计算另一方揭示的有效时间，单位为秒
	RevealWindow = int64(300)
)

var (
	ConfNameRevealWindow = pty.DiceX + ":" + "revealWindow"
	ConfNameDefaultCount = pty.DiceX + ":" + "defaultCount"
	ConfNameMaxCount     = pty.DiceX + ":" + "maxCount"
)

//statedb key
func accountKey(addr string) (key []byte) {
	key = append(key, []byte("mavl-"+pty.DiceX+"-acct-")...)
	key = append(key, []byte(addr)...)
	return key
}

func offerKey(commitment []byte) (key []byte) {
	key = append(key, []byte("mavl-"+pty.DiceX+"-offer-")...)
	key = append(key, commitment...)
	return key
}

func gameKey(id int64) (key []byte) {
	key = append(key, []byte("mavl-"+pty.DiceX+"-game-")...)
	key = append(key, []byte(fmt.Sprintf("%018d", id))...)
	return key
}

func stakeQueueKey(stake int64) (key []byte) {
	key = append(key, []byte("mavl-"+pty.DiceX+"-queue-")...)
	key = append(key, []byte(fmt.Sprintf("%018d", stake))...)
	return key
}

func globalKey() (key []byte) {
	key = append(key, []byte("mavl-"+pty.DiceX+"-global")...)
	return key
}

//localdb key
func calcOfferStakeKey(stake, offerId int64) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-offer-stake:%018d:%018d", stake, offerId))
}

func calcOfferStakePrefix(stake int64) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-offer-stake:%018d:", stake))
}

func calcOfferAddrKey(addr string, offerId int64) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-offer-addr:%s:%018d", addr, offerId))
}

func calcOfferAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-offer-addr:%s:", addr))
}

func calcGameStatusKey(status int32, gameId int64) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-game-status:%d:%018d", status, gameId))
}

func calcGameStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-game-status:%d:", status))
}

func calcGameAddrKey(addr string, gameId int64) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-game-addr:%s:%018d", addr, gameId))
}

func calcGameAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-"+pty.DiceX+"-game-addr:%s:", addr))
}
