package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeXYWH(t *testing.T) {
	r := MakeXYWH(10, 20, 30, 40)
	assert.Equal(t, MakeLTRB(10, 20, 40, 60), r)
	assert.Equal(t, Scalar(30), r.Width())
	assert.Equal(t, Scalar(40), r.Height())
}

func TestRectIsEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.True(t, MakeXYWH(5, 5, 0, 10).IsEmpty())
	assert.True(t, MakeLTRB(10, 0, 5, 10).IsEmpty())
	assert.False(t, MakeXYWH(0, 0, 1, 1).IsEmpty())
}

func TestRectMakeOutset(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"integers unchanged", MakeLTRB(1, 2, 3, 4), MakeLTRB(1, 2, 3, 4)},
		{"fractional grows", MakeLTRB(0.5, 0.5, 9.5, 9.5), MakeLTRB(0, 0, 10, 10)},
		{"negative floors away", MakeLTRB(-1.2, -0.3, 2.1, 3.9), MakeLTRB(-2, -1, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.MakeOutset())
		})
	}
}

func TestRectOutset(t *testing.T) {
	assert.Equal(t, MakeLTRB(-1, -1, 11, 11), MakeXYWH(0, 0, 10, 10).Outset(1))
	assert.Equal(t, MakeLTRB(2, 2, 8, 8), MakeXYWH(0, 0, 10, 10).Outset(-2))
}

func TestRectIntersectsWithTolerance(t *testing.T) {
	base := MakeXYWH(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", MakeXYWH(5, 5, 10, 10), true},
		{"contained", MakeXYWH(2, 2, 3, 3), true},
		{"abutting edges touch", MakeXYWH(10, 0, 5, 10), true},
		{"within epsilon", MakeXYWH(10.00005, 0, 5, 10), true},
		{"beyond epsilon", MakeXYWH(10.001, 0, 5, 10), false},
		{"disjoint", MakeXYWH(20, 20, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.IntersectsWithTolerance(tt.other))
			assert.Equal(t, tt.want, tt.other.IntersectsWithTolerance(base))
		})
	}
}

func TestRectJoin(t *testing.T) {
	a := MakeXYWH(0, 0, 10, 10)
	b := MakeXYWH(20, 5, 10, 10)
	want := MakeLTRB(0, 0, 30, 15)

	assert.Equal(t, want, a.Join(b))
	assert.Equal(t, want, b.Join(a))
}

func TestRectIntersect(t *testing.T) {
	a := MakeXYWH(0, 0, 10, 10)

	assert.Equal(t, MakeLTRB(5, 5, 10, 10), a.Intersect(MakeXYWH(5, 5, 10, 10)))
	assert.Equal(t, Rect{}, a.Intersect(MakeXYWH(20, 20, 5, 5)))
	assert.Equal(t, Rect{}, a.Intersect(MakeXYWH(10, 0, 5, 5)), "shared edge has no area")
}

func TestRectNearlyEqual(t *testing.T) {
	a := MakeXYWH(0, 0, 10, 10)

	assert.True(t, a.NearlyEqual(MakeLTRB(0.00005, 0, 10, 10)))
	assert.False(t, a.NearlyEqual(MakeLTRB(0.001, 0, 10, 10)))
}
