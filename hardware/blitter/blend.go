package blitter

// Blend the source colour into the destination colour. Both colours are in
// ARGB4444 format.
//
// The alpha of the source is increased by one so that a value of 15 is
// completely opaque. The alpha of the result is the larger of the two alpha
// values.
func Blend(dst uint16, src uint16) uint16 {
	da := (dst & 0xf000) >> 12
	dr := (dst & 0x0f00) >> 8
	dg := (dst & 0x00f0) >> 4
	db := dst & 0x000f

	sa := ((src & 0xf000) >> 12) + 1
	sr := (src & 0x0f00) >> 8
	sg := (src & 0x00f0) >> 4
	sb := src & 0x000f

	inv := 17 - sa

	da = max(da, sa-1)
	dr = ((sa * sr) + (inv * dr)) >> 4
	dg = ((sa * sg) + (inv * dg)) >> 4
	db = ((sa * sb) + (inv * db)) >> 4

	return da<<12 | dr<<8 | dg<<4 | db
}
