// The MIT License (MIT)
//
// Copyright (c) 2026 kingqn0321
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package cm256 implements Cauchy MDS block erasure coding over GF(256).
//
// Given k equal-sized original blocks, Encode produces m recovery blocks
// such that any k of the resulting k+m blocks are sufficient to
// reconstruct every original via Decode. The package is synchronous,
// allocation-light on the hot path, and safe for concurrent use by
// multiple goroutines as long as the byte buffers passed to a single
// call are not shared with a concurrent call.
//
// Typical usage mirrors klauspost/reedsolomon: build a Params, call
// Encode once to produce the recovery set, transmit or store both sets
// tagged with their block index, then call Decode with any k surviving
// blocks (mixing originals and recoveries) to recover the rest.
package cm256
