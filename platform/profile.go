package platform

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/typedef"
)

// Profile identifies a target platform. Empty fields are unspecified:
// no Endian follows Arch, no Arch follows the host, and no OS resolves only
// the portable C layer. Profile is comparable and keys the registry cache.
type Profile struct {
	Endian Endian
	Arch   Arch
	OS     OS
}

// ParseProfile parses the three tokens, accepting the aliases listed in the
// package documentation. The error names the first invalid token.
func ParseProfile(endian, arch, os string) (Profile, error) {
	e, err := ParseEndian(endian)
	if err != nil {
		return Profile{}, err
	}
	a, err := ParseArch(arch)
	if err != nil {
		return Profile{}, err
	}
	o, err := ParseOS(os)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Endian: e, Arch: a, OS: o}, nil
}

// Host returns the profile of the running program.
func Host() Profile {
	a, _ := HostArch()
	return Profile{Arch: a}
}

// Order returns the byte order bare type names resolve to. An explicit
// Endian wins over the architecture default.
func (p Profile) Order() ctype.Order {
	if p.Endian != "" {
		return p.Endian.Order()
	}
	if p.Arch != "" {
		return p.Arch.Order()
	}
	return ctype.Native
}

// Bits returns the address width used for pointer-sized typedefs.
func (p Profile) Bits() int {
	if b := p.Arch.Bits(); b != 0 {
		return b
	}
	if a, ok := HostArch(); ok {
		return a.Bits()
	}
	return bits.UintSize
}

// Layer returns the typedef layer the profile resolves.
func (p Profile) Layer() string {
	if p.OS == "" {
		return typedef.Root
	}
	return string(p.OS)
}

func (p Profile) validate(tables *typedef.Tables) error {
	if p.Endian != "" {
		if p.Endian.Order() == ctype.Native {
			return errors.InvalidPlatform("endian", string(p.Endian))
		}
	}
	if p.Arch != "" {
		if _, ok := archs[p.Arch]; !ok {
			return errors.InvalidPlatform("arch", string(p.Arch))
		}
	}
	if p.OS != "" && !tables.Has(string(p.OS)) {
		return errors.InvalidPlatform("os", string(p.OS))
	}
	return nil
}

func (p Profile) String() string {
	parts := make([]string, 0, 3)
	if p.Endian != "" {
		parts = append(parts, "endian="+string(p.Endian))
	}
	if p.Arch != "" {
		parts = append(parts, "arch="+string(p.Arch))
	}
	if p.OS != "" {
		parts = append(parts, "os="+string(p.OS))
	}
	if len(parts) == 0 {
		return "host"
	}
	return strings.Join(parts, " ")
}

// GoString makes profiles readable in test failures.
func (p Profile) GoString() string {
	return fmt.Sprintf("platform.Profile{%s}", p)
}
