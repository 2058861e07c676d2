package pdf

const (
	summaryLineHeight  = 16
	summaryTotalHeight = 22
	summaryPad         = 4
)

// summaryHeight grows by one line per entry, so a discount line makes the
// box taller.
func summaryHeight(sum Summary) float64 {
	return summaryPad*2 + float64(len(sum.Lines))*summaryLineHeight + summaryTotalHeight
}

// SummaryBox draws the totals box anchored at the left edge of the column
// named anchor and extending to the right margin. The box is never split
// across pages.
func SummaryBox(sum Summary, anchor string) Section {
	return func(s *Session, cur Cursor) Cursor {
		th, l := s.Theme, s.Layout
		h := summaryHeight(sum)
		cur = cur.EnsureSpace(h, s.Continue)

		x := s.Grid.X(anchor)
		w := l.ContentRight() - x
		y := cur.Y
		s.Canvas.OutlineRect(x, y, w, h, th.Border, 0.75)

		f := th.Font(9)
		for i, line := range sum.Lines {
			top := y + summaryPad + float64(i)*summaryLineHeight
			by := baseline(top, summaryLineHeight, f)
			s.Canvas.Text(line.Label, x+8, by, AlignLeft, f, th.Ink)
			s.Canvas.Text(line.Value, x+w-8, by, AlignRight, f, th.ToneColor(line.Tone))
			if i > 0 {
				s.Canvas.Line(x+4, top, x+w-4, top, th.Accent, 0.5)
			}
		}

		top := y + h - summaryPad - summaryTotalHeight
		s.Canvas.FillRect(x+summaryPad, top, w-2*summaryPad, summaryTotalHeight, th.Primary)
		big := th.BoldFont(11)
		by := baseline(top, summaryTotalHeight, big)
		s.Canvas.Text(sum.Total.Label, x+8, by, AlignLeft, big, th.Paper)
		s.Canvas.Text(sum.Total.Value, x+w-8, by, AlignRight, big, th.Paper)

		return cur.Advance(h + blockGap)
	}
}
