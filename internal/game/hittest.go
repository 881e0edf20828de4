package game

import "shootinggallery/internal/targets"

// HitTest returns the frontmost live target containing the point, or nil.
// Targets are in draw order, so the scan runs from the end.
func HitTest(ts []*targets.Target, x, y float64) *targets.Target {
	for i := len(ts) - 1; i >= 0; i-- {
		if ts[i].Contains(x, y) {
			return ts[i]
		}
	}
	return nil
}
