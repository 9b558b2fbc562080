// Package presence records time-bucketed presence on top of a bit vector.
//
// A Tracker covers a window of fixed-size slots starting at an origin. Each
// slot holds one flag; marking a span of time sets every slot it touches.
// Out-of-window requests are reported as errors wrapping ErrOutsideWindow,
// never as panics, so trackers can be fed directly from untrusted event
// streams.
//
//	t, _ := presence.New(midnight)
//	_ = t.MarkSpan(midnight.Add(9*time.Hour), midnight.Add(17*time.Hour))
//	seen, _ := t.Seen(midnight.Add(12 * time.Hour)) // true
package presence
