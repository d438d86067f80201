package handler

import (
	"bytes"
	"sync"
)

// Responses are small JSON envelopes around round records and outcomes,
// so a modest initial capacity covers the common case.
const bufferInitialCap = 512

// bufferMaxCap keeps oversized buffers out of the pool so a single large
// response body does not pin memory for the life of the process.
const bufferMaxCap = 64 << 10

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialCap))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > bufferMaxCap {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
