package vmath

// Number is the set of numeric types a Vector2 can carry
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector2 is a 2D numeric pair used for positions (screen pixels) and velocities (pixels per frame)
type Vector2[T Number] struct {
	X T
	Y T
}

// Vec2 constructs a Vector2
func Vec2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Add returns v + o
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied component-wise by s
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are exactly zero
func (v Vector2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp limits each component to its [min, max] range
func (v Vector2[T]) Clamp(min, max Vector2[T]) Vector2[T] {
	return Vector2[T]{X: Clamp(v.X, min.X, max.X), Y: Clamp(v.Y, min.Y, max.Y)}
}

// Within reports whether v lies in the closed box [min, max] on both axes
func (v Vector2[T]) Within(min, max Vector2[T]) bool {
	return v.X >= min.X && v.X <= max.X && v.Y >= min.Y && v.Y <= max.Y
}

// Clamp limits x to [lo, hi]
func Clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
