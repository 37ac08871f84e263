package void

import "sync"

// Void is the shared scream counter. The count only ever moves forward, one
// scream at a time, and every read observes a committed value.
type Void struct {
	lk    sync.Mutex
	count uint64
}

func New(initial uint64) *Void {
	return &Void{count: initial}
}

// Increment records one scream and returns the count including it.
func (v *Void) Increment() uint64 {
	v.lk.Lock()
	defer v.lk.Unlock()

	v.count++
	return v.count
}

func (v *Void) Query() uint64 {
	v.lk.Lock()
	defer v.lk.Unlock()

	return v.count
}
