package alignment

import (
	"fmt"
	"os"
	"sync"
)

// pageSize resolves the OS page size exactly once per process. The page
// size cannot change while the process runs, so the memoized value is
// never recomputed or invalidated. A page size that is not a power of two
// would break the divisibility guarantee of every descriptor, so it is a
// fatal platform-support condition, checked at first use.
var pageSize = sync.OnceValue(func() int {
	size := os.Getpagesize()
	if size <= 0 || size&(size-1) != 0 {
		panic(fmt.Sprintf("alignment: OS page size %d is not a power of two, platform unsupported", size))
	}

	return size
})

// Page is the alignment to the operating system page boundary.
type Page struct{}

// Size returns the OS page size. The first call resolves and verifies it;
// later calls return the memoized value. Safe for concurrent first use.
func (Page) Size() int {
	return pageSize()
}
