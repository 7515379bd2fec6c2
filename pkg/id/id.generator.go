package id

import (
	"fmt"
	"sync"
	"time"
)

const (
	epoch          int64 = 1672531200000 // 2023-01-01 UTC in ms
	nodeBits       uint8 = 10            // up to 1024 nodes
	sequenceBits   uint8 = 12            // up to 4096 IDs per ms per node
	nodeMax              = -1 ^ (-1 << nodeBits)
	sequenceMask         = -1 ^ (-1 << sequenceBits)
	nodeShift      uint8 = sequenceBits
	timestampShift uint8 = sequenceBits + nodeBits
)

var ErrInvalidNode = fmt.Errorf("node ID must be between 0 and %d", nodeMax)

// Snowflake issues collision-free numeric identifiers: a millisecond
// timestamp, a node ID and a per-millisecond sequence packed into an int64.
type Snowflake struct {
	mu        sync.Mutex
	timestamp int64
	nodeID    int64
	sequence  int64
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 || nodeID > int64(nodeMax) {
		return nil, ErrInvalidNode
	}
	return &Snowflake{nodeID: nodeID}, nil
}

func (s *Snowflake) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()

	// Clock rollback: wait until the clock catches up.
	for now < s.timestamp {
		now = time.Now().UnixMilli()
	}

	if now == s.timestamp {
		s.sequence = (s.sequence + 1) & sequenceMask
		if s.sequence == 0 {
			// sequence overflow, wait for the next ms
			for now <= s.timestamp {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}

	s.timestamp = now

	return ((now - epoch) << timestampShift) |
		(s.nodeID << nodeShift) |
		s.sequence
}
