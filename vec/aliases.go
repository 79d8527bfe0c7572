package vec

// Shorthands for common instantiations.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec2i = Vec2[int]

	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec3i = Vec3[int]

	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
	Vec4i = Vec4[int]
)
