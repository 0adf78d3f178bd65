package dispatcher

import (
	"elevsim/src/elev"
	"elevsim/src/types"
)

// Device is anything the control system can route a stimulus to.
type Device interface {
	ID() string
	ReceiveTrigger(stimulus types.Stimulus)
	OnChange(listener types.Listener)
}

var (
	_ Device = (*elev.Elevator)(nil)
	_ Device = (*elev.FloorCallButton)(nil)
)

// stimulusQueue is a min-heap in Compare order, driven through container/heap.
type stimulusQueue []types.Stimulus

func (q stimulusQueue) Len() int           { return len(q) }
func (q stimulusQueue) Less(i, j int) bool { return types.Compare(q[i], q[j]) < 0 }
func (q stimulusQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *stimulusQueue) Push(x any) {
	*q = append(*q, x.(types.Stimulus))
}

func (q *stimulusQueue) Pop() any {
	old := *q
	n := len(old)
	s := old[n-1]
	*q = old[:n-1]
	return s
}
