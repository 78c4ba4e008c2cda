package eonet

import (
	"errors"
	"sync"

	"github.com/huoshan017/eonet/packet"
)

var ErrBodyLenInvalid = errors.New("eonet: receive body len too large")
var ErrFrameTooShort = errors.New("eonet: frame shorter than its packet id")
var ErrConnClosed = errors.New("eonet: conn is closed")
var ErrSendChanFull = errors.New("eonet: send chan full")
var ErrRecvChanEmpty = errors.New("eonet: recv chan empty")
var ErrNoPacketHandle = errors.New("eonet: no packet handle")
var ErrUnexpectedInit = errors.New("eonet: expected an init packet")
var ErrInitRejected = errors.New("eonet: init rejected")
var ErrBadChallengeResponse = errors.New("eonet: server failed the challenge")

var (
	noDisconnectErrMap  = make(map[error]struct{})
	noDisconnectErrLock sync.RWMutex
)

func init() {
	noDisconnectErrMap[ErrSendChanFull] = struct{}{}
	noDisconnectErrMap[ErrRecvChanEmpty] = struct{}{}
	noDisconnectErrMap[ErrNoPacketHandle] = struct{}{}
}

// IsNoDisconnectError reports whether err, or an error it wraps, should be
// logged and skipped instead of closing the connection. Unrecognized packets
// always are.
func IsNoDisconnectError(err error) bool {
	if err == nil {
		return false
	}
	if packet.IsUnrecognizedPacket(err) {
		return true
	}
	noDisconnectErrLock.RLock()
	defer noDisconnectErrLock.RUnlock()
	for e := range noDisconnectErrMap {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func RegisterNoDisconnectError(err error) {
	noDisconnectErrLock.Lock()
	noDisconnectErrMap[err] = struct{}{}
	noDisconnectErrLock.Unlock()
}
