package pdf

// PageAdder starts a new page and returns its index.
type PageAdder interface {
	AddPage() int
}

// Continuation runs right after a page break, on the fresh page. It may
// draw a continuation header and returns the cursor below it.
type Continuation func(cur Cursor) Cursor

// Cursor is the vertical writing position of one render. It is a value:
// sections receive a cursor and return the advanced one.
type Cursor struct {
	Y         float64
	PageIndex int

	pageHeight float64
	top        float64
	bottom     float64
	pages      PageAdder
}

// NewCursor starts at the top margin of page 0.
func NewCursor(layout PageLayout, pages PageAdder) Cursor {
	return Cursor{
		Y:          layout.Top,
		pageHeight: layout.Paper.Height,
		top:        layout.Top,
		bottom:     layout.Bottom,
		pages:      pages,
	}
}

// Advance moves the cursor down by amount.
func (c Cursor) Advance(amount float64) Cursor {
	c.Y += amount
	return c
}

// Limit is the lowest y content may reach on the current page.
func (c Cursor) Limit() float64 {
	return c.pageHeight - c.bottom
}

// Remaining is the vertical space left on the current page.
func (c Cursor) Remaining() float64 {
	return c.Limit() - c.Y
}

// Fits reports whether a block of height amount fits below the cursor.
func (c Cursor) Fits(amount float64) bool {
	return c.Y+amount <= c.Limit()
}

// EnsureSpace guarantees that a block of height amount can be drawn at the
// returned cursor. When it does not fit, a new page is started, Y resets to
// the top margin and cont, if any, runs on the new page.
func (c Cursor) EnsureSpace(amount float64, cont Continuation) Cursor {
	if c.Fits(amount) {
		return c
	}
	if c.pages != nil {
		c.PageIndex = c.pages.AddPage()
	} else {
		c.PageIndex++
	}
	c.Y = c.top
	if cont != nil {
		c = cont(c)
	}
	return c
}
