// Package numeric defines the arithmetic a distance representation must
// provide to the chamfer transforms, together with three representations.
//
// Representations:
//
//   - Float[T] (float32 or float64): unreached is +Inf, excluded is NaN.
//     +Inf absorbs additions naturally.
//   - Uint16: unreached is 65535, excluded is 65534, finite distances live
//     in [0, 65533]. Add saturates to unreached instead of wrapping.
//   - Fixed: 26.6 fixed point (golang.org/x/image/math/fixed.Int26_6).
//     Unreached is the largest Int26_6, excluded is -1 (raw), and Add
//     saturates to unreached.
//
// Weights are taken from chamfer.Offset: floating representations read
// Offset.Weight, Uint16 reads Offset.IntWeight and Fixed converts
// Offset.Weight to 26.6.
package numeric
