package lz77

import "sync"

// maxPooledCapacity caps the buffers kept for reuse so one large decode does not pin memory.
const maxPooledCapacity = 4 << 20

// dictionaryPool is a pool of decode dictionaries.
var dictionaryPool = sync.Pool{
	New: func() any {
		return &dictionary{}
	},
}

// acquireDictionary acquires a dictionary from the pool, reset for opts.
func acquireDictionary(opts Options) *dictionary {
	dict := dictionaryPool.Get().(*dictionary)
	dict.reset(opts)
	return dict
}

// releaseDictionary releases a dictionary to the pool.
func releaseDictionary(dict *dictionary) {
	if dict == nil {
		return
	}

	if cap(dict.buf) > maxPooledCapacity {
		dict.buf = nil
	}
	dict.buf = dict.buf[:0]
	dictionaryPool.Put(dict)
}
