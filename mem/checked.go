package mem

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// TestingT is the subset of testing.T the CheckedAllocator needs.
type TestingT interface {
	Errorf(format string, args ...any)
	Helper()
}

// CheckedAllocator wraps another allocator and tracks every outstanding
// allocation together with its call site. Tests wrap their allocator and
// call AssertSize at the end to catch buffers that were never released.
type CheckedAllocator struct {
	mem    Allocator
	logger *slog.Logger

	sz     atomic.Int64
	allocs sync.Map
}

type allocSite struct {
	pc   uintptr
	line int
	size int
}

// NewCheckedAllocator wraps mem. If logger is nil, slog.Default is used
// for leak reports.
func NewCheckedAllocator(mem Allocator, logger *slog.Logger) *CheckedAllocator {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckedAllocator{mem: mem, logger: logger}
}

// CurrentAlloc returns the number of outstanding allocated bytes.
func (a *CheckedAllocator) CurrentAlloc() int { return int(a.sz.Load()) }

// Allocate implements Allocator.
func (a *CheckedAllocator) Allocate(size, align int) Allocation {
	alloc := a.mem.Allocate(size, align)
	if size == 0 {
		return alloc
	}

	a.sz.Add(int64(size))

	site := allocSite{size: size}
	if pc, _, line, ok := runtime.Caller(2); ok {
		site.pc, site.line = pc, line
	}
	a.allocs.Store(addressOf(alloc.Data), &site)

	return alloc
}

// Free implements Allocator.
func (a *CheckedAllocator) Free(alloc Allocation) {
	defer a.mem.Free(alloc)

	if len(alloc.Data) == 0 {
		return
	}

	a.sz.Add(-int64(len(alloc.Data)))
	a.allocs.Delete(addressOf(alloc.Data))
}

// AssertSize fails t unless exactly sz bytes are outstanding, reporting
// the call site of every leaked allocation.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()

	a.allocs.Range(func(_, value any) bool {
		site := value.(*allocSite)
		fn := runtime.FuncForPC(site.pc)
		if fn != nil {
			file, _ := fn.FileLine(site.pc)
			a.logger.Error("leaked allocation",
				slog.Int("size", site.size),
				slog.String("site", fmt.Sprintf("%s:%d", file, site.line)))
		}
		return true
	})

	if got := a.CurrentAlloc(); got != sz {
		t.Errorf("invalid allocation count: got %d bytes, want %d", got, sz)
	}
}
