package fileseq

import (
	"testing"

	"github.com/matryer/is"
)

func TestResolveFrameTokens(t *testing.T) {
	is := is.New(t)
	r := NewResolver()

	cases := []struct {
		path     string
		frame    int
		expected string
	}{
		{"/renders/beauty.####.exr", 7, "/renders/beauty.0007.exr"},
		{"/renders/beauty.#.exr", 1001, "/renders/beauty.1001.exr"},
		{"/renders/beauty.%04d.exr", 12, "/renders/beauty.0012.exr"},
		{"/renders/beauty.%d.exr", 12, "/renders/beauty.12.exr"},
		{"/renders/beauty.####.exr", -3, "/renders/beauty.-0003.exr"},
		{"/renders/beauty_%03d.exr", 5, "/renders/beauty_005.exr"},
		{"/renders/####.exr", 9, "/renders/0009.exr"},
		{"/scenes/shot.katana", 1, "/scenes/shot.katana"},
	}

	for _, tc := range cases {
		p, err := r.Resolve(tc.path, tc.frame)
		is.NoErr(err)
		is.Equal(p, tc.expected)
	}
}

func TestIsSequence(t *testing.T) {
	is := is.New(t)
	r := NewResolver()

	is.True(r.IsSequence("/a/b.####.exr"))
	is.True(r.IsSequence("/a/b.%03d.exr"))
	is.True(!r.IsSequence("/a/b.exr"))
}

func TestLiteralPercentAndHashInNamesAreKept(t *testing.T) {
	is := is.New(t)
	r := NewResolver()

	for _, p := range []string{
		"/shows/promo/100%done.exr",
		"/shows/take#2/plate.exr",
		"/shows/promo/%d/plate.exr",
		"/shows/promo/shot#1.exr",
	} {
		is.True(!r.IsSequence(p))

		resolved, err := r.Resolve(p, 1001)
		is.NoErr(err)
		is.Equal(resolved, p)
	}
}

func TestOnlyTheFileNameTokenIsExpanded(t *testing.T) {
	is := is.New(t)
	r := NewResolver()

	p, err := r.Resolve("/renders/v.##.beauty/pony.####.exr", 12)
	is.NoErr(err)
	is.Equal(p, "/renders/v.##.beauty/pony.0012.exr")

	p, err = r.Resolve("/renders/pony.##.####.exr", 12)
	is.NoErr(err)
	is.Equal(p, "/renders/pony.##.0012.exr")
}
