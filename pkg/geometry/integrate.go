package geometry

// 8-point Gauss-Legendre abscissae and weights on [-1, 1].
var (
	glAbscissae = [8]float64{
		-0.9602898564975363, -0.7966664774136267, -0.5255324099163290, -0.1834346424956498,
		0.1834346424956498, 0.5255324099163290, 0.7966664774136267, 0.9602898564975363,
	}
	glWeights = [8]float64{
		0.1012285362903763, 0.2223810344533745, 0.3137066458778873, 0.3626837833783620,
		0.3626837833783620, 0.3137066458778873, 0.2223810344533745, 0.1012285362903763,
	}
)

// integrationPanels is the number of equal sub-intervals integrate splits
// [a, b] into. The panel layout is independent of f, so the result scales
// linearly when f does.
const integrationPanels = 32

// integrate approximates the integral of f over [a, b] with composite
// Gauss-Legendre quadrature.
func integrate(f func(float64) float64, a, b float64) float64 {
	h := (b - a) / integrationPanels
	sum := 0.0
	for p := 0; p < integrationPanels; p++ {
		lo := a + float64(p)*h
		mid := lo + h/2
		for i, x := range glAbscissae {
			sum += glWeights[i] * f(mid+x*h/2)
		}
	}
	return sum * h / 2
}
