package gridastar

// frontierItem is one open-set entry. Several items may exist for the same
// cell; only the one matching the cell's recorded f is live.
type frontierItem struct {
	Cell  int
	FCost float64
	Order uint64
}

// frontier is a min-heap on FCost. Equal costs pop in insertion order.
type frontier []*frontierItem

func (queue frontier) Len() int { return len(queue) }
func (queue frontier) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Order < queue[j].Order
}
func (queue frontier) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
}

func (queue *frontier) Push(x any) {
	*queue = append(*queue, x.(*frontierItem))
}

func (queue *frontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
