package skelmarch

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

func vecClose(a, b ms3.Vec, tol float32) bool {
	return ms3.Norm(ms3.Sub(a, b)) <= tol
}

func TestTranslationMovesPoint(t *testing.T) {
	m := Translation(ms3.Vec{X: 1, Y: -2, Z: 3})
	got := m.MulPosition(ms3.Vec{X: 0.5})
	want := ms3.Vec{X: 1.5, Y: -2, Z: 3}
	if !vecClose(got, want, tol) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRotationZQuarterTurn(t *testing.T) {
	m := RotationZ(math32.Pi / 2)
	got := m.MulPosition(ms3.Vec{X: 1})
	want := ms3.Vec{Y: 1}
	if !vecClose(got, want, tol) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRotationMatchesAxisForms(t *testing.T) {
	const angle = 0.7
	p := ms3.Vec{X: 0.3, Y: -0.8, Z: 0.5}
	pairs := []struct {
		axis ms3.Vec
		m    ms3.Mat4
	}{
		{ms3.Vec{X: 1}, RotationX(angle)},
		{ms3.Vec{Y: 1}, RotationY(angle)},
		{ms3.Vec{Z: 1}, RotationZ(angle)},
	}
	for _, pair := range pairs {
		got := Rotation(angle, pair.axis).MulPosition(p)
		want := pair.m.MulPosition(p)
		if !vecClose(got, want, tol) {
			t.Errorf("axis %+v: got %+v, want %+v", pair.axis, got, want)
		}
	}
}

func TestComposeAppliesRightToLeft(t *testing.T) {
	// Compose(T, R) means rotate first, then translate.
	m := Compose(Translation(ms3.Vec{X: 1}), RotationZ(math32.Pi/2))
	got := m.MulPosition(ms3.Vec{X: 1})
	want := ms3.Vec{X: 1, Y: 1}
	if !vecClose(got, want, tol) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWorldToLocalInvertsPlacement(t *testing.T) {
	pos := ms3.Vec{X: 0.4, Y: -1.2, Z: 2.5}
	placement := Placement(Rotation(1.1, ms3.Unit(ms3.Vec{X: 1, Y: 2, Z: -1})), pos)
	w2l := WorldToLocal(placement)

	// The placement's own position maps back to the local origin.
	if got := w2l.MulPosition(pos); !vecClose(got, ms3.Vec{}, 1e-4) {
		t.Errorf("placement origin maps to %+v, want origin", got)
	}

	// Round trip through placement then inverse is identity.
	p := ms3.Vec{X: -0.7, Y: 0.2, Z: 1.3}
	if got := w2l.MulPosition(placement.MulPosition(p)); !vecClose(got, p, 1e-4) {
		t.Errorf("round trip gives %+v, want %+v", got, p)
	}
}
