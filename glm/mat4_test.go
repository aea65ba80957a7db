package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat4Transform(t *testing.T) {
	tr := TranslationMat4[float32](10, -5, 0)

	pos := tr.Transform(Vec4f{1, 2, 0, 1})
	assert.Equal(t, Vec4f{11, -3, 0, 1}, pos)

	// w=0 ignores the translation
	dir := tr.Transform(Vec4f{1, 2, 0, 0})
	assert.Equal(t, Vec4f{1, 2, 0, 0}, dir)
}

func TestMat4MulIdentity(t *testing.T) {
	m := TranslationMat4[float32](1, 2, 3).Scale(2, 2, 1)

	assert.Equal(t, m, IdentityMat4[float32]().Mul(m))
	assert.Equal(t, m, m.Mul(IdentityMat4[float32]()))
}

func TestMat4ScaleThenTranslate(t *testing.T) {
	m := TranslationMat4[float32](100, 0, 0).Scale(2, 2, 1)

	// scale is applied first, then the translation
	assert.Equal(t, Vec4f{102, 4, 0, 1}, m.Transform(Vec4f{1, 2, 0, 1}))
}

func TestRotationZMat4(t *testing.T) {
	m := RotationZMat4[float32](Rad(math.Pi / 2))

	pos := m.Transform(Vec4f{1, 0, 0, 1})
	assert.InDelta(t, 0, pos[0], 1e-5)
	assert.InDelta(t, 1, pos[1], 1e-5)
}

func TestVec2(t *testing.T) {
	a := Vec2f{3, 4}

	assert.Equal(t, Vec2f{1, 1}, a.Sub(Vec2f{2, 3}))
	assert.Equal(t, Vec2f{6, 8}, a.MulScalar(2))
	assert.Equal(t, Vec4f{3, 4, 0, 1}, a.Extend(0).Extend(1))
	assert.Equal(t, a, a.Extend(0).Extend(1).XY())
}
