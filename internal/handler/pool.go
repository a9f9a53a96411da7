package handler

import (
	"bytes"
	"sync"
)

// Buffers start at 512 bytes; larger ones are dropped instead of pooled.
const (
	bufferInitialSize = 512
	bufferMaxPooled   = 64 << 10
)

// bufferPool reuses JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	// Item listings can be large; keep them from pinning memory
	if buf.Cap() > bufferMaxPooled {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
