package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quickhull/dbg"
)

// Readable, colorized name for a point in trace output. The pet name is keyed
// by the point's address in the list, so it stays stable for the duration of
// one computation.
func (b *Builder) pointName(i int) string {
	p := &b.hull.Points[i]
	name := fmt.Sprintf("%s#%d(%g, %g)", dbg.Name(p), i, p.X, p.Y)
	if b.hull.Contains(i) {
		return aurora.Green(name).String()
	}
	return aurora.Cyan(name).String()
}

func (b *Builder) tracef(format string, args ...interface{}) {
	if b.Trace == nil {
		return
	}
	indent := strings.Repeat("  ", b.depth)
	fmt.Fprintf(b.Trace, indent+format+"\n", args...)
}

func (b *Builder) traceFarthest(p1, p2 int, side Side, idx int, distance float64) {
	if b.Trace == nil {
		return
	}
	b.tracef("%s -> %s, %s: farthest is %s (area %g)",
		b.pointName(p1), b.pointName(p2), side, aurora.Bold(b.pointName(idx)), distance)
}

func (b *Builder) traceBase(p1, p2 int, side Side) {
	if b.Trace == nil {
		return
	}
	b.tracef("%s -> %s, %s: %s (count %d)",
		b.pointName(p1), b.pointName(p2), side, aurora.Red("nothing outside"), b.hull.Count)
}
