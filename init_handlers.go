// Package main — Handler katmanı başlatma.
//
// Handler'lar "thin" dir: sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/friendgraph/handlers"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	MyFriend *handlers.MyFriendHandler
}

func initHandlers(svcs *Services) *Handlers {
	return &Handlers{
		MyFriend: handlers.NewMyFriendHandler(svcs.MyFriend),
	}
}
