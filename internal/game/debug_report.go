package game

import (
	"fmt"
	"sort"
	"strings"
)

// DebugReport renders a human-readable snapshot of the board: occupancy and
// stacking per cell, the selection session if one is open, and the tail of
// the event log. The host binds a key that copies it to the clipboard.
func (b *Board) DebugReport() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- hexagon board report ---\n")
	fmt.Fprintf(&sb, "radius=%d pieces=%d tick=%d stacker_max=%d\n\n",
		b.Radius, b.occ.Len(), b.tick, b.stacker.GlobalMax())

	// Occupied cells, sorted for stable output.
	type cellRow struct {
		c      HexCoord
		pieces []*Piece
	}
	var rows []cellRow
	for _, c := range b.AllCoords() {
		if ps := b.occ.At(c); len(ps) > 0 {
			rows = append(rows, cellRow{c, ps})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].c.Q != rows[j].c.Q {
			return rows[i].c.Q < rows[j].c.Q
		}
		return rows[i].c.R < rows[j].c.R
	})

	sb.WriteString("== occupancy ==\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "%-12s", coordString(row.c))
		for i, p := range row.pieces {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s[%s z=%d", p.Label, p.Kind, p.ZIndex)
			if p.Kind == KindBeacon {
				fmt.Fprintf(&sb, " rot=%d", p.Rotation())
			}
			if p.Owner != NoOwner {
				fmt.Fprintf(&sb, " own=%d", p.Owner)
			}
			sb.WriteString("]")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\n== selection ==\n")
	if b.selection.Active() {
		fmt.Fprintf(&sb, "active: %q\n", b.selection.Prompt())
		targets := b.selection.Targets()
		sort.Slice(targets, func(i, j int) bool {
			if targets[i].Q != targets[j].Q {
				return targets[i].Q < targets[j].Q
			}
			return targets[i].R < targets[j].R
		})
		for _, c := range targets {
			fmt.Fprintf(&sb, "  target %s\n", coordString(c))
		}
	} else {
		sb.WriteString("idle\n")
	}

	sb.WriteString("\n== recent events ==\n")
	sb.WriteString(b.elog.Tail(12))
	return sb.String()
}
