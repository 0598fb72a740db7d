package scheduler

import (
	"math/rand"
	"testing"
)

func TestSplitIntoBlocks_CoversEveryPixelExactlyOnce(t *testing.T) {
	width, height := 37, 21
	blocks := SplitIntoBlocks(width, height, 16)

	covered := make([]int, width*height)
	for _, b := range blocks {
		for y := b.Y; y < b.Y+b.Height; y++ {
			for x := b.X; x < b.X+b.Width; x++ {
				covered[y*width+x]++
			}
		}
	}
	for i, c := range covered {
		if c != 1 {
			t.Fatalf("pixel %d covered %d times, want exactly 1", i, c)
		}
	}
}

func TestSplitIntoBlocks_ClipsLastRowAndColumn(t *testing.T) {
	blocks := SplitIntoBlocks(20, 20, 16)
	for _, b := range blocks {
		if b.X+b.Width > 20 || b.Y+b.Height > 20 {
			t.Errorf("block %+v exceeds image bounds", b)
		}
	}
}

func TestShuffleBlocks_PreservesSetMembership(t *testing.T) {
	blocks := SplitIntoBlocks(64, 64, 16)
	original := append([]Block(nil), blocks...)

	ShuffleBlocks(blocks, rand.New(rand.NewSource(7)))

	if len(blocks) != len(original) {
		t.Fatalf("shuffle changed length: got %d, want %d", len(blocks), len(original))
	}
	counts := make(map[Block]int)
	for _, b := range original {
		counts[b]++
	}
	for _, b := range blocks {
		counts[b]--
	}
	for b, c := range counts {
		if c != 0 {
			t.Errorf("block %+v count mismatch after shuffle: %d", b, c)
		}
	}
}
