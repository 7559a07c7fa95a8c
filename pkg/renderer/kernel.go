package renderer

// MaxGridSize bounds GridKernel sizes accepted from users
const MaxGridSize = 8

// Sample is one sub-pixel offset and its weight
type Sample struct {
	DX     float64
	DY     float64
	Weight float64
}

// Kernel is a fixed set of sub-pixel samples averaged into one pixel
type Kernel []Sample

// SingleSample is one ray per pixel through the pixel corner
func SingleSample() Kernel {
	return Kernel{{DX: 0, DY: 0, Weight: 1}}
}

// Grid2x2 is four equally weighted samples at +/-0.25 on each axis
func Grid2x2() Kernel {
	return GridKernel(2)
}

// GridKernel is an n x n grid of equally weighted samples centred on the
// pixel corner. GridKernel(1) is SingleSample.
func GridKernel(n int) Kernel {
	if n <= 1 {
		return SingleSample()
	}
	k := make(Kernel, 0, n*n)
	w := 1 / float64(n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			k = append(k, Sample{
				DX:     (float64(i)+0.5)/float64(n) - 0.5,
				DY:     (float64(j)+0.5)/float64(n) - 0.5,
				Weight: w,
			})
		}
	}
	return k
}
