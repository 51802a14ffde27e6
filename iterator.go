package fit

import "github.com/messeiro/gofit/profile"

// Messages is the result of a full Decode: every Message the stream
// produced, in stream order. The filter/count helpers here are consumer
// conveniences (spec §6: "a thin filter-by-message-name helper is not
// part of the core") layered on top of the core decode loop, supplementing
// spec.md per SPEC_FULL §11.5 from the Rust original's MessageIterator/
// FilterMessageIterator and message_counts.
type Messages []Message

// Filter returns the subset of messages whose Kind equals mt, preserving
// stream order.
func (ms Messages) Filter(mt profile.MessageType) Messages {
	out := make(Messages, 0, len(ms))
	for _, m := range ms {
		if m.Kind == mt {
			out = append(out, m)
		}
	}
	return out
}

// Counts tallies messages by MessageType.
func (ms Messages) Counts() map[profile.MessageType]int {
	counts := make(map[profile.MessageType]int)
	for _, m := range ms {
		counts[m.Kind]++
	}
	return counts
}
