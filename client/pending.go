package client

import (
	"sort"
	"time"

	"github.com/wirerpc/wirerpc/protocol"
)

type pendingReply struct {
	ch        chan protocol.Response
	timestamp time.Time
}

type pendingItem struct {
	uid       int64
	timestamp time.Time
}

type pendingQueue []pendingItem

func (p pendingQueue) Len() int {
	return len(p)
}

func (p pendingQueue) Less(i, j int) bool {
	return p[i].timestamp.Before(p[j].timestamp)
}

func (p pendingQueue) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func pendingOldest(pending map[int64]pendingReply, num int) pendingQueue {
	if num > len(pending) {
		num = len(pending)
	}
	queue := make(pendingQueue, 0, len(pending))
	for uid, p := range pending {
		queue = append(queue, pendingItem{uid, p.timestamp})
	}
	sort.Sort(queue)
	return queue[:num]
}

// pendingChan returns the reply channel for uid, creating it if
// needed. Oldest entries are evicted once PendingLimit is reached.
func (c *Client) pendingChan(uid int64) chan protocol.Response {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		c.pending = map[int64]pendingReply{}
	}
	if c.PendingLimit > 0 && len(c.pending) >= c.PendingLimit && c.PendingDiscard > 0 {
		for _, item := range pendingOldest(c.pending, c.PendingDiscard) {
			delete(c.pending, item.uid)
		}
	}

	p, ok := c.pending[uid]
	if !ok {
		p = pendingReply{
			ch:        make(chan protocol.Response, 1),
			timestamp: time.Now(),
		}
		c.pending[uid] = p
	}
	return p.ch
}

func (c *Client) forget(uid int64) {
	c.mu.Lock()
	delete(c.pending, uid)
	c.mu.Unlock()
}
