package mem

import "unsafe"

// addressOf returns the integer address of the first element of b.
func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// alignOffset returns how many bytes past addr the next multiple of
// align lies. align must be a power of two. Zero when addr is already
// aligned.
func alignOffset(addr uintptr, align int) int {
	mask := uintptr(align) - 1
	return int((uintptr(align) - addr&mask) & mask)
}
