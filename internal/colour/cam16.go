package colour

import "math"

// Viewing conditions are fixed for the whole process: dim surround under a
// 64 lux ambient with a 20% grey background. All conversions in one run use
// the same parameters so appearance distances stay comparable.
const (
	surroundF    = 0.9
	surroundC    = 0.590
	surroundNc   = 0.9
	ambientLux   = 64.0
	bgLuminanceY = 20.0
)

// Illuminant carries a CAT16 adapting white point together with every
// intermediate the forward and inverse appearance transforms need. Values
// are derived once in NewIlluminant and never change.
type Illuminant struct {
	XW, YW, ZW float64

	LA float64

	RW, GW, BW float64
	D          float64
	DR, DG, DB float64

	FL, N, Z      float64
	Nbb, Ncb      float64
	RAW, GAW, BAW float64
	AW            float64

	white XY
}

// cat16 applies the CAT16 cone-response matrix.
func cat16(x, y, z float64) (r, g, b float64) {
	r = 0.401288*x + 0.650173*y - 0.051461*z
	g = -0.250268*x + 1.204414*y + 0.045854*z
	b = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// cat16Inverse undoes cat16.
func cat16Inverse(r, g, b float64) (x, y, z float64) {
	x = 1.86206786*r - 1.01125463*g + 0.14918677*b
	y = 0.38752654*r + 0.62144744*g - 0.00897398*b
	z = -0.01584150*r - 0.03412294*g + 1.04996444*b
	return
}

// adapt is the post-adaptation nonlinearity applied to a cone response.
func adapt(fl, v float64) float64 {
	p := math.Pow(fl*math.Abs(v)/100, 0.42)
	return math.Copysign(400*p/(p+27.13), v) + 0.1
}

// unadapt inverts adapt.
func unadapt(fl, v float64) float64 {
	v -= 0.1
	a := math.Abs(v)
	return math.Copysign(100/fl*math.Pow(27.13*a/(400-a), 1/0.42), v)
}

// NewIlluminant derives the full CAT16 viewing-condition state for a white
// point chromaticity.
func NewIlluminant(white XY) *Illuminant {
	yw := 100.0
	xw := yw * white.X / white.Y
	zw := yw * (1 - white.X - white.Y) / white.Y

	lw := ambientLux / math.Pi
	la := lw * bgLuminanceY / yw

	rw, gw, bw := cat16(xw, yw, zw)

	d := clip(surroundF*(1-math.Exp((-la-42)/92)/3.6), 0, 1)
	dr := d*yw/rw + 1 - d
	dg := d*yw/gw + 1 - d
	db := d*yw/bw + 1 - d

	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	fl := 0.2*k4*5*la + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*la)
	n := bgLuminanceY / yw
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 * math.Pow(1/n, 0.2)

	raw := adapt(fl, dr*rw)
	gaw := adapt(fl, dg*gw)
	baw := adapt(fl, db*bw)
	aw := nbb * (2*raw + gaw + 0.05*baw - 0.305)

	return &Illuminant{
		XW: xw, YW: yw, ZW: zw,
		LA: la,
		RW: rw, GW: gw, BW: bw,
		D:  d,
		DR: dr, DG: dg, DB: db,
		FL: fl, N: n, Z: z,
		Nbb: nbb, Ncb: nbb,
		RAW: raw, GAW: gaw, BAW: baw,
		AW:    aw,
		white: white,
	}
}

// WhitePoint returns the adapting white chromaticity.
func (ill *Illuminant) WhitePoint() XY {
	return ill.white
}

// WhiteXYZ returns the adapting white point as tristimulus values.
func (ill *Illuminant) WhiteXYZ() XYZ {
	return XYZ{X: ill.XW, Y: ill.YW, Z: ill.ZW}
}

// CAM16UCS is a perceptually uniform appearance coordinate: lightness J and
// the two UCS chroma axes A, B. C carries the CAM16 chroma correlate for
// consumers that need chroma magnitude without recomputing it.
type CAM16UCS struct {
	J, A, B float64
	C       float64
}

// Hue returns the hue angle atan2(B, A) wrapped into [0, 2π).
func (c CAM16UCS) Hue() float64 {
	return cyclic(math.Atan2(c.B, c.A), 2*math.Pi)
}

// CAM16 runs the forward appearance transform from tristimulus values
// under this illuminant.
func (ill *Illuminant) CAM16(c XYZ) CAM16UCS {
	r, g, b := cat16(c.X, c.Y, c.Z)
	ra := adapt(ill.FL, r*ill.DR)
	ga := adapt(ill.FL, g*ill.DG)
	ba := adapt(ill.FL, b*ill.DB)

	a := ra - 12*ga/11 + ba/11
	bb := (ra + ga - 2*ba) / 9

	h := cyclic(math.Atan2(bb, a), 2*math.Pi)
	et := 0.25 * (math.Cos(h+2) + 3.8)

	aa := ill.Nbb * (2*ra + ga + 0.05*ba - 0.305)
	j := 100 * math.Pow(aa/ill.AW, surroundC*ill.Z)
	t := (50000.0 / 13.0 * surroundNc * ill.Ncb * et * math.Hypot(a, bb)) /
		(ra + ga + 21.0/20.0*ba)
	chroma := math.Pow(t, 0.9) * math.Sqrt(j/100) *
		math.Pow(1.64-math.Pow(0.29, ill.N), 0.73)
	m := chroma * math.Pow(ill.FL, 0.25)

	jj := j * 1.7 / (1 + 0.007*j)
	mm := math.Log(1+0.0228*m) / 0.0228
	return CAM16UCS{
		J: jj,
		A: mm * math.Cos(h),
		B: mm * math.Sin(h),
		C: chroma,
	}
}

// XYZ runs the inverse appearance transform back to tristimulus values.
// Inverse of CAM16 up to floating-point rounding.
func (ill *Illuminant) XYZ(c CAM16UCS) XYZ {
	j := c.J / (1.7 - 0.007*c.J)
	if j <= 0 {
		return XYZ{}
	}
	mm := math.Hypot(c.A, c.B)
	m := (math.Exp(0.0228*mm) - 1) / 0.0228
	chroma := m / math.Pow(ill.FL, 0.25)
	h := math.Atan2(c.B, c.A)

	alpha := chroma / math.Sqrt(j/100)
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, ill.N), 0.73), 1/0.9)

	et := 0.25 * (math.Cos(h+2) + 3.8)
	aa := ill.AW * math.Pow(j/100, 1/(surroundC*ill.Z))
	p1 := 50000.0 / 13.0 * surroundNc * ill.Ncb * et
	s := aa/ill.Nbb + 0.305

	sinH := math.Sin(h)
	cosH := math.Cos(h)

	var a, b float64
	if t > 0 {
		gamma := 23 * s * t / (23*p1 + 11*t*cosH + 108*t*sinH)
		a = gamma * cosH
		b = gamma * sinH
	}

	ra := (460*s + 451*a + 288*b) / 1403
	ga := (460*s - 891*a - 261*b) / 1403
	ba := (460*s - 220*a - 6300*b) / 1403

	r := unadapt(ill.FL, ra) / ill.DR
	g := unadapt(ill.FL, ga) / ill.DG
	bc := unadapt(ill.FL, ba) / ill.DB

	x, y, z := cat16Inverse(r, g, bc)
	return XYZ{X: x, Y: y, Z: z}
}

// Complementary mirrors the chroma axes, keeping lightness. The chroma
// correlate is carried over unchanged, which is close enough for the
// neutraliser search.
func (c CAM16UCS) Complementary() CAM16UCS {
	return CAM16UCS{J: c.J, A: -c.A, B: -c.B, C: c.C}
}

// ChromaHalved scales the chroma axes to half strength.
func (c CAM16UCS) ChromaHalved() CAM16UCS {
	return CAM16UCS{J: c.J, A: c.A / 2, B: c.B / 2, C: c.C / 2}
}

// LightnessHalved scales lightness to half strength.
func (c CAM16UCS) LightnessHalved() CAM16UCS {
	return CAM16UCS{J: c.J / 2, A: c.A, B: c.B, C: c.C}
}

// Mix interpolates between two appearance coordinates, t in [0, 1].
func Mix(a, b CAM16UCS, t float64) CAM16UCS {
	lerp := func(x, y float64) float64 { return x*(1-t) + y*t }
	return CAM16UCS{
		J: lerp(a.J, b.J),
		A: lerp(a.A, b.A),
		B: lerp(a.B, b.B),
		C: lerp(a.C, b.C),
	}
}
