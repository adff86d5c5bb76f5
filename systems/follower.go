package systems

import (
	"github.com/automoto/followhead/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFollowers starts new followers, advances every follower by one frame and
// delivers the warm-up notifications they raised.
func UpdateFollowers(ecs *ecs.ECS) {
	dt := frameDelta()

	components.Follower.Each(ecs.World, func(e *donburi.Entry) {
		follower := components.Follower.Get(e)
		if follower.Follower == nil {
			return
		}
		if !follower.Started {
			follower.Started = true
			// A missing camera is logged by Start and leaves the panel where it is.
			_ = follower.Start()
		}
		follower.Update(dt)
	})

	components.WarmupFinished.ProcessEvents(ecs.World)
}

// EachFollower calls fn for every live follower.
func EachFollower(ecs *ecs.ECS, fn func(e *donburi.Entry, f *components.FollowerData)) {
	components.Follower.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Follower.Get(e)
		if f.Follower != nil {
			fn(e, f)
		}
	})
}
