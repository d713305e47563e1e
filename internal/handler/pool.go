package handler

import (
	"bytes"
	"sync"
)

const bufferInitialSize = 1024

// bufferPool recycles JSON encoding buffers; snapshots with full decks are
// a few KB, so buffers are sized for that.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
