//go:build !amd64

package cachectl

// Invd is only available on x86-64 processors.
func Invd() {
	panic("cachectl: invd requires an x86-64 processor")
}

// Wbinvd is only available on x86-64 processors.
func Wbinvd() {
	panic("cachectl: wbinvd requires an x86-64 processor")
}
