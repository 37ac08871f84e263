package void

// Saved is the record written by stores that keep a log of saves rather
// than a single value.
type Saved struct {
	Count uint64 `json:"count"`
}
