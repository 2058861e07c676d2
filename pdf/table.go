package pdf

const tableHeaderHeight = 20

// Table draws the line-item table on the session grid. Rows have a fixed
// height; content that does not fit is truncated. Space is checked per row,
// so the table may span pages, and the header row is repeated on each new
// page.
func Table(rows []Row, rowHeight float64) Section {
	return func(s *Session, cur Cursor) Cursor {
		withHeader := func(c Cursor) Cursor {
			if s.Continue != nil {
				c = s.Continue(c)
			}
			return tableHeader(s, c)
		}

		cur = cur.EnsureSpace(tableHeaderHeight+rowHeight, s.Continue)
		cur = tableHeader(s, cur)

		if len(rows) == 0 {
			cur = emptyRow(s, cur, rowHeight)
			return cur.Advance(blockGap)
		}
		for i, row := range rows {
			cur = cur.EnsureSpace(rowHeight, withHeader)
			tableRow(s, cur, i, row, rowHeight)
			cur = cur.Advance(rowHeight)
		}
		return cur.Advance(blockGap)
	}
}

// tableHeader draws the inverted header row.
func tableHeader(s *Session, cur Cursor) Cursor {
	th, g := s.Theme, s.Grid
	s.Canvas.FillRect(g.Left(), cur.Y, g.Width(), tableHeaderHeight, th.Primary)
	f := th.BoldFont(8)
	y := baseline(cur.Y, tableHeaderHeight, f)
	for _, col := range g.Columns() {
		x, w := g.Cell(col.Key)
		s.Canvas.Text(s.T(col.Label), anchorX(x, w, col.Align), y, col.Align, f, th.Paper)
	}
	return cur.Advance(tableHeaderHeight)
}

// tableRow draws one body row: background, cell borders, the bold
// designation with its muted description, then the other cells.
func tableRow(s *Session, cur Cursor, index int, row Row, height float64) {
	th, g := s.Theme, s.Grid
	bg := th.Paper
	if index%2 == 1 {
		bg = th.RowAlt
	}
	s.Canvas.FillRect(g.Left(), cur.Y, g.Width(), height, bg)
	for _, col := range g.Columns() {
		x, w := g.Cell(col.Key)
		s.Canvas.OutlineRect(x, cur.Y, w, height, th.Border, 0.5)
	}

	regular := th.Font(8.5)
	y := baseline(cur.Y, height, regular)

	if cell, ok := row[designationKey]; ok {
		col := columnByKey(g, designationKey)
		x, _ := g.Cell(designationKey)
		bold := th.BoldFont(8.5)
		name := fit(cell.Text, col.MaxChars)
		s.Canvas.Text(name, x+cellPad, y, AlignLeft, bold, th.Ink)

		budget := col.MaxChars - runeLen(name) - 2
		if cell.Sub != "" && (col.MaxChars <= 0 || budget > len(ellipsis)) {
			sub := th.Font(7)
			dx := MeasureWidth(s.Measurer, name, bold) + 4
			s.Canvas.Text(fit(cell.Sub, budget), x+cellPad+dx, y, AlignLeft, sub, th.Muted)
		}
	}

	for _, col := range g.Columns() {
		if col.Key == designationKey {
			continue
		}
		cell, ok := row[col.Key]
		if !ok || cell.Text == "" {
			continue
		}
		x, w := g.Cell(col.Key)
		f := regular
		if cell.Bold {
			f = th.BoldFont(8.5)
		}
		s.Canvas.Text(fit(cell.Text, col.MaxChars), anchorX(x, w, col.Align), y, col.Align, f, th.ToneColor(cell.Tone))
	}
}

// emptyRow keeps the table region visible when there are no items.
func emptyRow(s *Session, cur Cursor, height float64) Cursor {
	th, g := s.Theme, s.Grid
	s.Canvas.FillRect(g.Left(), cur.Y, g.Width(), height, th.Paper)
	s.Canvas.OutlineRect(g.Left(), cur.Y, g.Width(), height, th.Border, 0.5)
	f := Font{Family: th.Family, Size: 8.5, Italic: true}
	s.Canvas.Text(s.T("table.empty"), g.Left()+g.Width()/2, baseline(cur.Y, height, f), AlignCenter, f, th.Muted)
	return cur.Advance(height)
}

// anchorX returns the x a text run aligned with align should be anchored
// at inside a cell.
func anchorX(x, w float64, align Align) float64 {
	switch align {
	case AlignRight:
		return x + w - cellPad
	case AlignCenter:
		return x + w/2
	}
	return x + cellPad
}

func columnByKey(g Grid, key string) Column {
	for _, c := range g.Columns() {
		if c.Key == key {
			return c
		}
	}
	return Column{Key: key}
}

// fit truncates text to a column budget; zero budgets mean unbounded.
func fit(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	return Truncate(text, maxChars)
}
