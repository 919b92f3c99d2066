//go:build amd64

// Package cachectl wraps the x86-64 cache-control instructions. Both
// instructions are privileged (CPL 0); calling them from user space
// raises a general protection fault. Intended for ring-0 environments
// such as hypervisor or kernel payloads.
package cachectl

// Invd invalidates the processor's internal caches without writing
// modified lines back to memory.
func Invd()

// Wbinvd writes modified cache lines back to memory, then invalidates the
// internal caches.
func Wbinvd()
