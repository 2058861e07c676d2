package pdf

import "testing"

type countingPages struct{ n int }

func (p *countingPages) AddPage() int {
	p.n++
	return p.n
}

func TestCursorEnsureSpace(t *testing.T) {
	layout := PageLayout{Paper: PaperSize{Width: 200, Height: 300}, Top: 20, Bottom: 30}
	pages := &countingPages{}
	cur := NewCursor(layout, pages)

	if cur.Limit() != 270 {
		t.Fatalf("limit = %v, want 270", cur.Limit())
	}

	cur = cur.Advance(200)
	same := cur.EnsureSpace(50, nil)
	if same.PageIndex != 0 || same.Y != 220 {
		t.Fatalf("block that fits exactly moved the cursor: %+v", same)
	}

	var ran bool
	next := cur.EnsureSpace(51, func(c Cursor) Cursor {
		ran = true
		if c.Y != layout.Top {
			t.Errorf("continuation saw y = %v, want top margin", c.Y)
		}
		return c.Advance(10)
	})
	if !ran {
		t.Error("continuation did not run")
	}
	if next.PageIndex != 1 || pages.n != 1 {
		t.Errorf("page index = %d, pages added = %d", next.PageIndex, pages.n)
	}
	if next.Y != 30 {
		t.Errorf("y after continuation = %v, want 30", next.Y)
	}
	if cur.PageIndex != 0 || cur.Y != 220 {
		t.Errorf("EnsureSpace mutated its receiver: %+v", cur)
	}
}

func TestCursorWithoutAdder(t *testing.T) {
	cur := NewCursor(DefaultLayout, nil).Advance(800)
	cur = cur.EnsureSpace(50, nil)
	if cur.PageIndex != 1 || cur.Y != DefaultLayout.Top {
		t.Errorf("cursor = %+v", cur)
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid(40, []Column{{Key: "a", Width: 100}, {Key: "b", Width: 50}, {Key: "c", Width: 25}})
	if g.Width() != 175 {
		t.Errorf("width = %v", g.Width())
	}
	if x := g.X("c"); x != 190 {
		t.Errorf("X(c) = %v, want 190", x)
	}
	if x, w := g.Cell("b"); x != 140 || w != 50 {
		t.Errorf("Cell(b) = %v, %v", x, w)
	}
	if x := g.X("missing"); x != 40 {
		t.Errorf("X(missing) = %v", x)
	}
}

func TestVariantColumnsFitContentWidth(t *testing.T) {
	for v, cfg := range variantConfigs {
		g := NewGrid(DefaultLayout.Left, cfg.Columns)
		if g.Width() > DefaultLayout.ContentWidth()+0.01 {
			t.Errorf("%s columns are %v wide, content is %v", v, g.Width(), DefaultLayout.ContentWidth())
		}
		if _, ok := g.offsets[cfg.SummaryAnchor]; !ok {
			t.Errorf("%s summary anchor %q is not a column", v, cfg.SummaryAnchor)
		}
	}
}
