package handler

import (
	"bytes"
	"sync"
)

// Most response payloads fit in 512 bytes; larger ones grow the buffer once
// and the grown buffer is reused.
const responseBufferSize = 512

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
