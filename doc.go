// Copyright (c) 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements arbitrary-precision signed integers, rational
// numbers, and configurable-precision binary floating-point numbers on top
// of the unsigned multi-limb kernel in internal/limb.
//
// Int, Rat, and Float follow the same convention as the rest of this
// module's numeric types: the zero value is a valid zero, and every
// mutating method takes its receiver as the destination, writes the
// result there, and returns the receiver so calls chain:
//
//	var sum mathx.Int
//	sum.Add(x, y).Mul(&sum, z)
//
// Destinations are allowed to alias either operand; squaring a value into
// itself (z.Mul(x, x)) is always safe.
package mathx
