package typedef

func e(name, target string) Entry { return Entry{Name: name, Target: target} }

func e32(name, target string) Entry { return Entry{Name: name, Target: target, Bits: 32} }

func e64(name, target string) Entry { return Entry{Name: name, Target: target, Bits: 64} }

// word returns the pair of entries mapping name to target32 on 32-bit
// targets and target64 on 64-bit ones.
func word(name, target32, target64 string) []Entry {
	return []Entry{e32(name, target32), e64(name, target64)}
}

func entries(groups ...[]Entry) []Entry {
	var out []Entry
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var cLayer = &Layer{
	Name: Root,
	Entries: entries(
		[]Entry{
			e("char", "int8"),
			e("uchar", "uint8"),
			e("signed_char", "int8"),
			e("unsigned_char", "uint8"),
			e("short", "int16"),
			e("ushort", "uint16"),
			e("unsigned_short", "uint16"),
			e("int", "int32"),
			e("uint", "uint32"),
			e("unsigned_int", "uint32"),
			e("long_long", "int64"),
			e("ulong_long", "uint64"),
			e("unsigned_long_long", "uint64"),
			e("float", "float32"),
			e("double", "float64"),
			e("bool", "uint8"),
			e("byte", "uint8"),
			e("word", "uint16"),
			e("dword", "uint32"),
			e("qword", "uint64"),
			e("wchar_t", "int32"),
			e("int8_t", "int8"),
			e("uint8_t", "uint8"),
			e("int16_t", "int16"),
			e("uint16_t", "uint16"),
			e("int32_t", "int32"),
			e("uint32_t", "uint32"),
			e("int64_t", "int64"),
			e("uint64_t", "uint64"),
		},
		word("long", "int32", "int64"),
		word("ulong", "uint32", "uint64"),
		word("unsigned_long", "uint32", "uint64"),
		word("pointer", "uint32", "uint64"),
		word("size_t", "uint32", "uint64"),
		word("ssize_t", "int32", "int64"),
		word("ptrdiff_t", "int32", "int64"),
		word("intptr_t", "int32", "int64"),
		word("uintptr_t", "uint32", "uint64"),
	),
}

var unixLayer = &Layer{
	Name:   "unix",
	Parent: Root,
	Entries: []Entry{
		e("caddr_t", "pointer"),
		e("u_char", "uchar"),
		e("u_short", "ushort"),
		e("u_int", "uint"),
		e("u_long", "ulong"),
		e("u_int8_t", "uint8_t"),
		e("u_int16_t", "uint16_t"),
		e("u_int32_t", "uint32_t"),
		e("u_int64_t", "uint64_t"),
		e("pid_t", "int"),
		e("uid_t", "uint"),
		e("gid_t", "uint"),
		e("id_t", "uint"),
		e("mode_t", "uint"),
		e("nlink_t", "uint"),
		e("dev_t", "ulong"),
		e("ino_t", "ulong"),
		e("off_t", "long_long"),
		e("blksize_t", "long"),
		e("blkcnt_t", "long_long"),
		e("fsblkcnt_t", "ulong"),
		e("fsfilcnt_t", "ulong"),
		e("time_t", "long"),
		e("suseconds_t", "long"),
		e("useconds_t", "uint"),
		e("clock_t", "long"),
		e("clockid_t", "int"),
		e("key_t", "int"),
		e("socklen_t", "uint"),
		e("sa_family_t", "ushort"),
		e("in_port_t", "uint16_net"),
		e("in_addr_t", "uint32_net"),
	},
}

var bsdLayer = &Layer{
	Name:   "bsd",
	Parent: "unix",
	Entries: []Entry{
		e("size_t", "uint"),
		e("ssize_t", "int"),
		e("quad_t", "long_long"),
		e("u_quad_t", "ulong_long"),
		e("qaddr_t", "pointer"),
		e("daddr_t", "long_long"),
		e("fixpt_t", "uint"),
		e("segsz_t", "int"),
		e("mode_t", "ushort"),
		e("dev_t", "uint"),
		e("nlink_t", "ushort"),
		e("fflags_t", "uint"),
		e("lwpid_t", "int"),
		e("sa_family_t", "uchar"),
	},
}

var freebsdLayer = &Layer{
	Name:   "freebsd",
	Parent: "bsd",
	Entries: []Entry{
		e64("size_t", "ulong"),
		e64("ssize_t", "long"),
		e("dev_t", "uint64_t"),
		e("ino_t", "uint64_t"),
		e("nlink_t", "uint64_t"),
		e("off_t", "int64_t"),
		e("accmode_t", "int"),
		e("cpuwhich_t", "int"),
		e("cpulevel_t", "int"),
		e("cpusetid_t", "int"),
		e("vm_offset_t", "uintptr_t"),
		e("vm_size_t", "uintptr_t"),
		e("register_t", "long"),
	},
}

var netbsdLayer = &Layer{
	Name:   "netbsd",
	Parent: "bsd",
	Entries: []Entry{
		e64("size_t", "ulong"),
		e64("ssize_t", "long"),
		e("dev_t", "uint64_t"),
		e("ino_t", "uint64_t"),
		e("mode_t", "uint"),
		e("nlink_t", "uint"),
		e("time_t", "int64_t"),
		e("vaddr_t", "ulong"),
		e("paddr_t", "ulong"),
		e("vsize_t", "ulong"),
		e("psize_t", "ulong"),
		e("register_t", "long"),
		e("cpuid_t", "ulong"),
	},
}

var openbsdLayer = &Layer{
	Name:   "openbsd",
	Parent: "bsd",
	Entries: []Entry{
		e64("size_t", "ulong"),
		e64("ssize_t", "long"),
		e("dev_t", "int32_t"),
		e("ino_t", "uint64_t"),
		e("mode_t", "uint"),
		e("nlink_t", "uint"),
		e("time_t", "int64_t"),
		e("vaddr_t", "ulong"),
		e("paddr_t", "ulong"),
		e("vsize_t", "ulong"),
		e("psize_t", "ulong"),
		e("register_t", "long"),
	},
}

var macosLayer = &Layer{
	Name:   "macos",
	Parent: "bsd",
	Entries: []Entry{
		e64("size_t", "ulong"),
		e64("ssize_t", "long"),
		e("dev_t", "int32_t"),
		e("ino_t", "uint64_t"),
		e("uuid_t", "uint8[16]"),
		e("natural_t", "uint"),
		e("integer_t", "int"),
		e("kern_return_t", "int"),
		e("mach_port_t", "natural_t"),
		e("vm_offset_t", "uintptr_t"),
		e("vm_size_t", "uintptr_t"),
		e("vm_address_t", "vm_offset_t"),
		e("user_addr_t", "uint64_t"),
		e("user_size_t", "uint64_t"),
	},
}

var linuxLayer = &Layer{
	Name:   "linux",
	Parent: "unix",
	Entries: entries(
		[]Entry{
			e("size_t", "ulong"),
			e("ssize_t", "long"),
			e("dev_t", "uint64_t"),
			e("mode_t", "uint"),
			e("off64_t", "int64_t"),
			e("loff_t", "long_long"),
			e("ino64_t", "uint64_t"),
			e("timer_t", "pointer"),
			e("__u8", "uint8"),
			e("__s8", "int8"),
			e("__u16", "uint16"),
			e("__s16", "int16"),
			e("__u32", "uint32"),
			e("__s32", "int32"),
			e("__u64", "uint64"),
			e("__s64", "int64"),
			e("__le16", "uint16_le"),
			e("__be16", "uint16_be"),
			e("__le32", "uint32_le"),
			e("__be32", "uint32_be"),
			e("__le64", "uint64_le"),
			e("__be64", "uint64_be"),
		},
		word("nlink_t", "uint", "ulong"),
	),
}

var windowsLayer = &Layer{
	Name:   "windows",
	Parent: Root,
	Entries: []Entry{
		// LLP64: long stays 32 bits on 64-bit Windows.
		e("long", "int32"),
		e("ulong", "uint32"),
		e("unsigned_long", "uint32"),
		e("wchar_t", "uint16"),
		e("time_t", "int64"),
		e("off_t", "long"),
		e("BYTE", "uint8"),
		e("WORD", "uint16"),
		e("DWORD", "uint32"),
		e("QWORD", "uint64"),
		e("DWORD32", "uint32"),
		e("DWORD64", "uint64"),
		e("BOOL", "int"),
		e("BOOLEAN", "BYTE"),
		e("CHAR", "char"),
		e("UCHAR", "uchar"),
		e("SHORT", "short"),
		e("USHORT", "ushort"),
		e("INT", "int"),
		e("UINT", "uint"),
		e("LONG", "long"),
		e("ULONG", "ulong"),
		e("LONGLONG", "long_long"),
		e("ULONGLONG", "ulong_long"),
		e("INT8", "int8"),
		e("UINT8", "uint8"),
		e("INT16", "int16"),
		e("UINT16", "uint16"),
		e("INT32", "int32"),
		e("UINT32", "uint32"),
		e("INT64", "int64"),
		e("UINT64", "uint64"),
		e("FLOAT", "float"),
		e("WCHAR", "wchar_t"),
		e("HANDLE", "pointer"),
		e("HMODULE", "HANDLE"),
		e("HINSTANCE", "HANDLE"),
		e("HKEY", "HANDLE"),
		e("HWND", "HANDLE"),
		e("LPVOID", "pointer"),
		e("PVOID", "pointer"),
		e("SIZE_T", "size_t"),
		e("SSIZE_T", "ssize_t"),
		e("INT_PTR", "intptr_t"),
		e("UINT_PTR", "uintptr_t"),
		e("LONG_PTR", "intptr_t"),
		e("ULONG_PTR", "uintptr_t"),
		e("DWORD_PTR", "ULONG_PTR"),
		e("WPARAM", "UINT_PTR"),
		e("LPARAM", "LONG_PTR"),
		e("LRESULT", "LONG_PTR"),
		e("ATOM", "WORD"),
		e("LANGID", "WORD"),
		e("COLORREF", "DWORD"),
		e("LCID", "DWORD"),
		e("HRESULT", "LONG"),
		e("NTSTATUS", "LONG"),
		e("USN", "LONGLONG"),
		e("GUID", "uint8[16]"),
	},
}

var builtinLayers = []*Layer{
	cLayer,
	unixLayer,
	bsdLayer,
	freebsdLayer,
	netbsdLayer,
	openbsdLayer,
	macosLayer,
	linuxLayer,
	windowsLayer,
}
