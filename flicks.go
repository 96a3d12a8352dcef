package wuffs

import "time"

// Flicks are a unit of time. One flick (frame-tick) is 1 / 705_600_000
// of a second. See https://github.com/OculusVR/Flicks
type Flicks int64

const (
	FlicksPerSecond      Flicks = 705600000
	FlicksPerMillisecond Flicks = 705600
)

// Duration converts f to a time.Duration, truncating toward zero.
func (f Flicks) Duration() time.Duration {
	secs := f / FlicksPerSecond
	rem := f % FlicksPerSecond
	return time.Duration(secs)*time.Second +
		time.Duration(int64(rem)*1e9/int64(FlicksPerSecond))
}

// DurationToFlicks converts d to flicks, truncating toward zero.
func DurationToFlicks(d time.Duration) Flicks {
	secs := int64(d / time.Second)
	rem := int64(d % time.Second)
	return Flicks(secs)*FlicksPerSecond +
		Flicks(rem*int64(FlicksPerSecond)/1e9)
}
