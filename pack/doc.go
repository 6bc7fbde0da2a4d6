// Package pack provides one-call helpers that pack and unpack single values
// and value lists for a platform profile.
//
//	b, err := pack.Uint(80, "in_port_t", platform.Profile{OS: platform.OSLinux})
//	vals, err := pack.UnpackValues("n N", b)
//
// Every helper compiles a template, so the bytes match what the template
// and stream packages produce for the same types.
package pack
