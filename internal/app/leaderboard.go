package app

import (
	"sync"

	"jersey-quiz-service/internal/domain"
)

// leaderboardHub fans leaderboard snapshots out to subscribers.
type leaderboardHub struct {
	mu          sync.Mutex
	subscribers map[chan domain.Leaderboard]struct{}
}

func newLeaderboardHub() *leaderboardHub {
	return &leaderboardHub{subscribers: make(map[chan domain.Leaderboard]struct{})}
}

func (h *leaderboardHub) subscribe(initial domain.Leaderboard) (<-chan domain.Leaderboard, func()) {
	ch := make(chan domain.Leaderboard, 8)
	ch <- initial

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *leaderboardHub) broadcast(lb domain.Leaderboard) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- lb:
		default:
			// Slow subscriber: drop the oldest snapshot so the latest wins.
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}
