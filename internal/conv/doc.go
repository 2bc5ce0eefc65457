// Package conv provides checked integer conversions for okm keys.
//
// Keys may be any Go integer kind. Some consumers (roaring bitmaps) only
// accept uint32, so conversions report overflow instead of wrapping.
package conv
