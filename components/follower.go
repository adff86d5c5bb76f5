package components

import (
	"github.com/automoto/followhead/shared/headfollow"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FollowerData attaches a head follower to an entity's transform
type FollowerData struct {
	*headfollow.Follower
	Started bool // Start has been called (once, on the first update)
}

var Follower = donburi.NewComponentType[FollowerData]()

// WarmupFinishedEvent is published once per follower when its reveal ends
type WarmupFinishedEvent struct {
	Entity donburi.Entity
	Name   string
}

var WarmupFinished = events.NewEventType[WarmupFinishedEvent]()
