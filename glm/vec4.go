package glm

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
		lhs[3] * s,
	}
}

// XY drops the z and w components.
func (lhs Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}
