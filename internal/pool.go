package internal

import (
	"sync"
)

// BufferPool holds scratch byte slices used when encoding worlds for hashing.
var BufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 4096)
		return &buf
	},
}
