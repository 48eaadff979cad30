package rom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlap(t *testing.T) {
	cases := []struct {
		name        string
		addr        uint32
		length      int
		wantRegion  Region
	}{
		{"disjoint low", 0x1000, 0x100, None},
		{"basic exact", 0xA000, 0x2000, Basic},
		{"basic partial tail", 0x9F00, 0x200, Basic},
		{"kernal exact", 0xE000, 0x2000, Kernal},
		{"kernal partial head", 0xFFF0, 0x20, Kernal},
		{"spans basic and kernal prefers kernal", 0xA000, 0x6000, Kernal},
		{"color ram disjoint", 0xD800, 1000, None},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.wantRegion, Overlap(c.addr, c.length))
		})
	}
}
