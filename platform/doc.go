// Package platform resolves typedef layers into per-platform registries.
//
// A Profile names a byte order, CPU architecture and operating system:
//
//	reg, err := platform.For("", "x86_64", "linux")
//	sizeT := reg.MustLookup("size_t") // 8-byte little-endian uint64
//
// Accepted tokens:
//
//	endian: little (le), big (be), net
//	arch:   x86 (i386, i686), x86_64 (amd64), ia64, ppc, ppc64,
//	        mips, mips_le (mipsel), mips64, mips64_le (mips64el),
//	        arm (arm_le), arm_be, arm64 (aarch64, arm64_le), arm64_be
//	os:     unix, bsd, linux, freebsd, netbsd, openbsd,
//	        macos (darwin, osx), windows
//
// An explicit endian wins over the architecture's default order. The
// architecture also selects the address width for pointer-sized types; with
// no architecture the host's is used.
//
// Registries are memoized per Profile in a Cache. The package-level
// functions use a shared default cache over the built-in layers; NewCache
// binds custom typedef.Tables.
package platform
