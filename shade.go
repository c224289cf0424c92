package texmod

// Shade computes the output color of one fragment: the texel sampled from
// img through smp at uv, multiplied channel by channel with vertexColor.
//
// Every channel, alpha included, goes through the same multiplication. The
// result is neither clamped nor gamma corrected; vertex colors above one
// produce outputs above one. Filtering and addressing of uv are decided by
// smp alone.
//
// Shade is pure: it reads img and smp and writes nothing, so any number of
// goroutines may call it at once with shared resources. Passing a nil image
// or sampler is a caller error; the result is then Transparent multiplied by
// vertexColor.
func Shade(vertexColor Color4, uv Coord2, img *Image, smp *Sampler) Color4 {
	return vertexColor.Mul(smp.Sample(img, uv))
}

// Fragment holds the interpolated inputs of one covered fragment.
type Fragment struct {
	Color Color4
	UV    Coord2
}
