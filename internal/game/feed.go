package game

const feedMaxEntries = 60

// Tone tags a feed line for colouring.
type Tone int

const (
	ToneInfo Tone = iota
	ToneScore
	ToneBomb
	ToneWarn
)

// FeedEntry is a single line in the feed.
type FeedEntry struct {
	Tick    int
	Tone    Tone
	Message string
}

// Feed is a ring buffer of player-facing messages, drawn as a side panel
// by the front ends.
type Feed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewFeed creates a feed with a fixed capacity.
func NewFeed() *Feed {
	return &Feed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *Feed) Add(tick int, tone Tone, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:    tick,
		Tone:    tone,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Len returns the number of stored entries.
func (f *Feed) Len() int { return f.count }

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Last returns the newest n entries, oldest first.
func (f *Feed) Last(n int) []FeedEntry {
	all := f.Recent()
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}
