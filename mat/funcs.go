// SPDX-License-Identifier: MIT
// Package mat: element-wise functors for Map and Zip. Arithmetic and
// order functors are defined for every Elem; transcendental functors are
// Float-only. float32 arguments take the math32 fast path, float64 (and
// named float types) go through the standard library.
package mat

import (
	"math"

	"github.com/chewxy/math32"
)

// ---------- arithmetic ----------

// Add returns x + y.
func Add[T Elem](x, y T) T { return x + y }

// Sub returns x - y.
func Sub[T Elem](x, y T) T { return x - y }

// Mul returns x * y.
func Mul[T Elem](x, y T) T { return x * y }

// Div returns x / y (integer division for integer element types).
func Div[T Elem](x, y T) T { return x / y }

// Neg returns -x.
func Neg[T Elem](x T) T { return -x }

// Abs returns the absolute value of x.
func Abs[T Elem](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqr returns x².
func Sqr[T Elem](x T) T { return x * x }

// Cube returns x³.
func Cube[T Elem](x T) T { return x * x * x }

// Rcp returns 1/x.
func Rcp[T Float](x T) T { return 1 / x }

// Fma returns x*y + z.
func Fma[T Elem](x, y, z T) T { return x*y + z }

// ---------- order ----------

// Max returns the larger of x and y.
func Max[T Elem](x, y T) T {
	if x < y {
		return y
	}
	return x
}

// Min returns the smaller of x and y.
func Min[T Elem](x, y T) T {
	if y < x {
		return y
	}
	return x
}

// Clamp limits x to [lo, hi].
func Clamp[T Elem](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Cond returns x when b is true, else y.
func Cond[T Elem](b bool, x, y T) T {
	if b {
		return x
	}
	return y
}

// ---------- power, rounding ----------

// Sqrt returns √x.
func Sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Pow(v, float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// Floor returns the largest integer value ≤ x.
func Floor[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Floor(v))
	}
	return T(math.Floor(float64(x)))
}

// Ceil returns the smallest integer value ≥ x.
func Ceil[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Ceil(v))
	}
	return T(math.Ceil(float64(x)))
}

// ---------- exp & log ----------

// Exp returns e**x.
func Exp[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Exp(v))
	}
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log(v))
	}
	return T(math.Log(float64(x)))
}

// Log2 returns the base-2 logarithm of x.
func Log2[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log2(v))
	}
	return T(math.Log2(float64(x)))
}

// Log10 returns the base-10 logarithm of x.
func Log10[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log10(v))
	}
	return T(math.Log10(float64(x)))
}

// Expm1 returns e**x - 1, accurate near zero.
func Expm1[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Expm1(v))
	}
	return T(math.Expm1(float64(x)))
}

// Log1p returns log(1 + x), accurate near zero.
func Log1p[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log1p(v))
	}
	return T(math.Log1p(float64(x)))
}

// ---------- trigonometry ----------

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tan(v))
	}
	return T(math.Tan(float64(x)))
}

// ---------- hyperbolic ----------

// Sinh returns the hyperbolic sine of x.
func Sinh[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sinh(v))
	}
	return T(math.Sinh(float64(x)))
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cosh(v))
	}
	return T(math.Cosh(float64(x)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tanh(v))
	}
	return T(math.Tanh(float64(x)))
}
