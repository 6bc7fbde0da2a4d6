// Package typedef holds the layered typedef tables that map symbolic C type
// names to concrete encodings for an operating system and address width.
//
// Layers form a parent chain. The built-in chains are:
//
//	c -> unix -> linux
//	c -> unix -> bsd -> freebsd | netbsd | openbsd | macos
//	c -> windows
//
// Resolving a leaf applies every layer from the root down, in entry order;
// a later entry for the same name replaces an earlier one. Entries may be
// restricted to a 32- or 64-bit address width, which is how a family layer
// can declare size_t and a leaf refine it for 64-bit targets.
//
// Targets are resolved only after all layers are applied, so an alias may
// name a type that a later layer defines. Alias cycles are reported as
// errors.KindCycle.
//
// Every alias that resolves to a multi-byte scalar also gets _le, _be, _ne
// and _net variants unless a layer declares them explicitly.
package typedef
