package ship

import (
	"github.com/lixenwraith/deepecho/event"
	"github.com/lixenwraith/deepecho/physics"
	"github.com/lixenwraith/deepecho/sonar"
)

// SegmentRef identifies the nearest segment of a route, Segment is navigation.NoSegment when unknown
type SegmentRef struct {
	Route   int
	Segment int
}

// Events are the notifications a ship publishes, owned by the ship instance
// Within one tick delivery order is Collisions, Finished, SegmentChanged
type Events struct {
	Collisions     event.Channel[physics.HitTest]
	Pongs          event.Channel[[]sonar.Pong]
	RouteChanged   event.Channel[int]
	SegmentChanged event.Channel[SegmentRef]
	Finished       event.Channel[struct{}]
}
