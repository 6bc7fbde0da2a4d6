// Package coerce converts loosely typed Go values into the bit patterns and
// float values that scalar encoders write.
//
// Integer coercion is wrapping: any Go integer kind is reinterpreted as a
// 64-bit two's complement pattern and truncated by the caller to the target
// width. Floats are accepted for integer targets only when they are integral.
//
// This package is internal to ctype.
package coerce
