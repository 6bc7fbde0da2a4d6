package platform

import (
	"runtime"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
)

// Endian selects the byte order of bare multi-byte type names.
type Endian string

const (
	EndianLittle Endian = "little"
	EndianBig    Endian = "big"
	// EndianNet is network byte order, the same as EndianBig.
	EndianNet Endian = "net"
)

// Order returns the scalar byte order for e, or Native when e is empty.
func (e Endian) Order() ctype.Order {
	switch e {
	case EndianLittle:
		return ctype.Little
	case EndianBig, EndianNet:
		return ctype.Big
	}
	return ctype.Native
}

// Arch is a CPU architecture. It implies a default byte order and address width.
type Arch string

const (
	ArchX86      Arch = "x86"
	ArchX86_64   Arch = "x86_64"
	ArchIA64     Arch = "ia64"
	ArchPPC      Arch = "ppc"
	ArchPPC64    Arch = "ppc64"
	ArchMIPS     Arch = "mips"
	ArchMIPSLE   Arch = "mips_le"
	ArchMIPS64   Arch = "mips64"
	ArchMIPS64LE Arch = "mips64_le"
	ArchARM      Arch = "arm"
	ArchARMBE    Arch = "arm_be"
	ArchARM64    Arch = "arm64"
	ArchARM64BE  Arch = "arm64_be"
)

type archInfo struct {
	order ctype.Order
	bits  int
}

var archs = map[Arch]archInfo{
	ArchX86:      {ctype.Little, 32},
	ArchX86_64:   {ctype.Little, 64},
	ArchIA64:     {ctype.Little, 64},
	ArchPPC:      {ctype.Big, 32},
	ArchPPC64:    {ctype.Big, 64},
	ArchMIPS:     {ctype.Big, 32},
	ArchMIPSLE:   {ctype.Little, 32},
	ArchMIPS64:   {ctype.Big, 64},
	ArchMIPS64LE: {ctype.Little, 64},
	ArchARM:      {ctype.Little, 32},
	ArchARMBE:    {ctype.Big, 32},
	ArchARM64:    {ctype.Little, 64},
	ArchARM64BE:  {ctype.Big, 64},
}

// Order returns the architecture's default byte order.
func (a Arch) Order() ctype.Order {
	if info, ok := archs[a]; ok {
		return info.order
	}
	return ctype.Native
}

// Bits returns the architecture's address width, or 0 if a is unknown.
func (a Arch) Bits() int {
	return archs[a].bits
}

// OS is an operating system family. Each names a typedef layer.
type OS string

const (
	OSUnix    OS = "unix"
	OSBSD     OS = "bsd"
	OSLinux   OS = "linux"
	OSFreeBSD OS = "freebsd"
	OSNetBSD  OS = "netbsd"
	OSOpenBSD OS = "openbsd"
	OSMacOS   OS = "macos"
	OSWindows OS = "windows"
)

var endianTokens = map[string]Endian{
	"little": EndianLittle,
	"le":     EndianLittle,
	"big":    EndianBig,
	"be":     EndianBig,
	"net":    EndianNet,
}

var archTokens = map[string]Arch{
	"x86":       ArchX86,
	"i386":      ArchX86,
	"i686":      ArchX86,
	"x86_64":    ArchX86_64,
	"amd64":     ArchX86_64,
	"ia64":      ArchIA64,
	"ppc":       ArchPPC,
	"ppc64":     ArchPPC64,
	"mips":      ArchMIPS,
	"mips_le":   ArchMIPSLE,
	"mipsel":    ArchMIPSLE,
	"mips64":    ArchMIPS64,
	"mips64_le": ArchMIPS64LE,
	"mips64el":  ArchMIPS64LE,
	"arm":       ArchARM,
	"arm_le":    ArchARM,
	"arm_be":    ArchARMBE,
	"arm64":     ArchARM64,
	"arm64_le":  ArchARM64,
	"aarch64":   ArchARM64,
	"arm64_be":  ArchARM64BE,
}

var osTokens = map[string]OS{
	"unix":    OSUnix,
	"bsd":     OSBSD,
	"linux":   OSLinux,
	"freebsd": OSFreeBSD,
	"netbsd":  OSNetBSD,
	"openbsd": OSOpenBSD,
	"macos":   OSMacOS,
	"darwin":  OSMacOS,
	"osx":     OSMacOS,
	"windows": OSWindows,
}

// ParseEndian parses an endian token. The empty string is unspecified.
func ParseEndian(s string) (Endian, error) {
	if s == "" {
		return "", nil
	}
	if e, ok := endianTokens[strings.ToLower(s)]; ok {
		return e, nil
	}
	return "", errors.InvalidPlatform("endian", s)
}

// ParseArch parses an architecture token or alias. The empty string is unspecified.
func ParseArch(s string) (Arch, error) {
	if s == "" {
		return "", nil
	}
	if a, ok := archTokens[strings.ToLower(s)]; ok {
		return a, nil
	}
	return "", errors.InvalidPlatform("arch", s)
}

// ParseOS parses an operating system token or alias. The empty string is unspecified.
func ParseOS(s string) (OS, error) {
	if s == "" {
		return "", nil
	}
	if o, ok := osTokens[strings.ToLower(s)]; ok {
		return o, nil
	}
	return "", errors.InvalidPlatform("os", s)
}

// Arches lists the canonical architecture names.
func Arches() []string {
	return sortedKeys(archs)
}

// OSes lists the canonical operating system names.
func OSes() []string {
	seen := make(map[OS]bool)
	for _, o := range osTokens {
		seen[o] = true
	}
	return sortedKeys(seen)
}

func sortedKeys[K ~string, V any](m map[K]V) []string {
	keys := maps.Keys(m)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	slices.Sort(out)
	return out
}

var goarchs = map[string]Arch{
	"386":      ArchX86,
	"amd64":    ArchX86_64,
	"arm":      ArchARM,
	"arm64":    ArchARM64,
	"mips":     ArchMIPS,
	"mipsle":   ArchMIPSLE,
	"mips64":   ArchMIPS64,
	"mips64le": ArchMIPS64LE,
	"ppc64":    ArchPPC64,
}

// HostArch returns the architecture of the running program, if it is one
// this package models.
func HostArch() (Arch, bool) {
	a, ok := goarchs[runtime.GOARCH]
	return a, ok
}
