package pdf

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Session is the shared drawing context of one render. Sections draw
// through it but exchange nothing except the cursor they return.
type Session struct {
	Canvas   *Canvas
	Layout   PageLayout
	Theme    Theme
	Grid     Grid
	Measurer Measurer
	T        func(code string) string
	Currency string
	Now      time.Time

	// Continue draws the compact header of continuation pages.
	Continue Continuation
}

// Section draws one visual block at cur and returns the cursor below it.
type Section func(s *Session, cur Cursor) Cursor

// Fixed block heights and character budgets.
const (
	letterheadHeight   = 64
	continuationHeight = 22
	bannerHeight       = 30
	infoBoxHeight      = 78
	stripHeight        = 14
	infoLines          = 4
	infoCharsPerLine   = 52
	notesLines         = 2
	notesCharsPerLine  = 110
	notesBoxHeight     = stripHeight + notesLines*11 + 8
	signatureHeight    = 96
	blockGap           = 12
	cellPad            = 4
)

// baseline returns the baseline that vertically centers a font in a band.
func baseline(top, height float64, f Font) float64 {
	return top + height/2 + f.Size*0.35
}

// stripBox draws a bordered box with a colored title strip.
func stripBox(s *Session, x, y, w, h float64, title string) {
	th := s.Theme
	s.Canvas.OutlineRect(x, y, w, h, th.Border, 0.75)
	s.Canvas.FillRect(x, y, w, stripHeight, th.Primary)
	f := th.BoldFont(8)
	s.Canvas.Text(title, x+6, baseline(y, stripHeight, f), AlignLeft, f, th.Paper)
}

// Letterhead draws the full issuer identity block of the first page.
func Letterhead(issuer Issuer) Section {
	return func(s *Session, cur Cursor) Cursor {
		th, l := s.Theme, s.Layout
		y := cur.Y
		right := l.ContentRight()

		name := th.BoldFont(16)
		s.Canvas.Text(orFallback(issuer.Name), l.Left, y+16, AlignLeft, name, th.Primary)

		small := th.Font(8)
		left := nonEmpty(issuer.legalLine(s.T), strings.ReplaceAll(issuer.Address, "\n", ", "),
			strings.Join(nonEmpty(issuer.Phone, issuer.Email, issuer.Website), " - "))
		for i, line := range left {
			s.Canvas.Text(Truncate(line, 70), l.Left, y+30+float64(i)*10, AlignLeft, small, th.Muted)
		}
		for i, line := range issuer.registrations(s.T) {
			s.Canvas.Text(line, right, y+12+float64(i)*10, AlignRight, small, th.Muted)
		}

		s.Canvas.Line(l.Left, y+letterheadHeight, right, y+letterheadHeight, th.Primary, 1)
		return cur.Advance(letterheadHeight + blockGap)
	}
}

// continuationHeader is the compact band at the top of pages after the
// first: issuer name on the left, document title and id on the right.
func continuationHeader(s *Session, issuer Issuer, title string) Continuation {
	return func(cur Cursor) Cursor {
		th, l := s.Theme, s.Layout
		y := cur.Y
		s.Canvas.Text(orFallback(issuer.Name), l.Left, y+11, AlignLeft, th.BoldFont(10), th.Primary)
		s.Canvas.Text(title+" "+s.T("doc.continued"), l.ContentRight(), y+11, AlignRight, th.Font(8), th.Muted)
		s.Canvas.Line(l.Left, y+16, l.ContentRight(), y+16, th.Border, 0.75)
		return cur.Advance(continuationHeight + blockGap/2)
	}
}

// TitleBanner draws the filled title band with the document id centered.
func TitleBanner(title, id, date, status string) Section {
	return func(s *Session, cur Cursor) Cursor {
		th, l := s.Theme, s.Layout
		cur = cur.EnsureSpace(bannerHeight, s.Continue)
		y := cur.Y
		w := l.ContentWidth()
		s.Canvas.FillRect(l.Left, y, w, bannerHeight, th.Primary)

		tf := th.BoldFont(14)
		s.Canvas.Text(documentTitle(s, title, id), l.Left+w/2, baseline(y, bannerHeight, tf), AlignCenter, tf, th.Paper)

		small := th.Font(8)
		s.Canvas.Text(s.T("doc.date")+" : "+date, l.ContentRight()-10, baseline(y, bannerHeight, small), AlignRight, small, th.Paper)
		if status != "" {
			s.Canvas.Text(strings.ToUpper(status), l.Left+10, baseline(y, bannerHeight, small), AlignLeft, small, th.Paper)
		}
		return cur.Advance(bannerHeight + blockGap)
	}
}

func documentTitle(s *Session, title, id string) string {
	return title + " " + s.T("doc.number") + " " + id
}

// InfoBlocks draws two bordered boxes side by side. Each box has a fixed
// height; lines beyond the fourth are dropped and long lines truncated.
func InfoBlocks(boxes [2]InfoBox) Section {
	return func(s *Session, cur Cursor) Cursor {
		th, l := s.Theme, s.Layout
		cur = cur.EnsureSpace(infoBoxHeight, s.Continue)
		const gap = 15
		w := (l.ContentWidth() - gap) / 2
		f := th.Font(8.5)
		for i, box := range boxes {
			x := l.Left + float64(i)*(w+gap)
			stripBox(s, x, cur.Y, w, infoBoxHeight, box.Title)
			for j, line := range box.Lines {
				if j == infoLines {
					break
				}
				y := cur.Y + stripHeight + 13 + float64(j)*13
				face := f
				if j == 0 {
					face = th.BoldFont(8.5)
				}
				s.Canvas.Text(Truncate(line, infoCharsPerLine), x+6, y, AlignLeft, face, th.Ink)
			}
		}
		return cur.Advance(infoBoxHeight + blockGap)
	}
}

// Notes draws titled text boxes. Text is hard-wrapped at a fixed character
// budget and limited to two lines. Each box moves to the next page whole.
func Notes(blocks []NoteBlock) Section {
	return func(s *Session, cur Cursor) Cursor {
		th, l := s.Theme, s.Layout
		f := th.Font(8)
		for _, b := range blocks {
			if strings.TrimSpace(b.Text) == "" {
				continue
			}
			cur = cur.EnsureSpace(notesBoxHeight, s.Continue)
			stripBox(s, l.Left, cur.Y, l.ContentWidth(), notesBoxHeight, b.Title)
			for i, line := range wrapHard(b.Text, notesCharsPerLine, notesLines) {
				s.Canvas.Text(line, l.Left+6, cur.Y+stripHeight+11+float64(i)*11, AlignLeft, f, th.Ink)
			}
			cur = cur.Advance(notesBoxHeight + blockGap)
		}
		return cur
	}
}

// Signatures draws two side-by-side signature boxes as one unsplittable
// block.
func Signatures(sigs []Signature) Section {
	return func(s *Session, cur Cursor) Cursor {
		if len(sigs) == 0 {
			return cur
		}
		th, l := s.Theme, s.Layout
		cur = cur.EnsureSpace(signatureHeight, s.Continue)
		const gap = 15
		w := (l.ContentWidth() - gap) / 2
		f := th.Font(8)
		for i, sig := range sigs {
			if i == 2 {
				break
			}
			x := l.Left + float64(i)*(w+gap)
			y := cur.Y
			stripBox(s, x, y, w, signatureHeight, sig.Title)
			name := s.T("sig.name")
			if sig.Name != "" {
				name += " " + Truncate(sig.Name, 40)
			}
			s.Canvas.Text(name, x+6, y+stripHeight+12, AlignLeft, f, th.Ink)
			s.Canvas.Text(s.T("sig.date"), x+6, y+stripHeight+24, AlignLeft, f, th.Ink)

			areaY := y + stripHeight + 30
			s.Canvas.OutlineRect(x+6, areaY, w-12, signatureHeight-stripHeight-36, th.Border, 0.5)
			s.Canvas.Text(s.T("sig.signature"), x+10, areaY+9, AlignLeft, th.Font(6.5), th.Muted)
		}
		return cur.Advance(signatureHeight + blockGap)
	}
}

// Footer draws the two footer lines on every page of the canvas. It does
// not use the cursor: the footer sits at a fixed offset from the page
// bottom.
func Footer(s *Session, issuer Issuer) {
	th, l := s.Theme, s.Layout
	y := l.Paper.Height - l.FooterOffset
	center := l.Left + l.ContentWidth()/2
	f := th.Font(7)
	generated := fmt.Sprintf(s.T("footer.generated"), s.Now.Format("02/01/2006"), s.Now.Format("15:04"))
	identity := Truncate(issuer.identity(s.T), 140)

	current := s.Canvas.Current()
	total := s.Canvas.PageCount()
	for i := 0; i < total; i++ {
		s.Canvas.Select(i)
		s.Canvas.Line(l.Left, y-10, l.ContentRight(), y-10, th.Border, 0.5)
		page := fmt.Sprintf(s.T("footer.page"), i+1, total)
		s.Canvas.Text(generated+" - "+page, center, y, AlignCenter, f, th.Muted)
		s.Canvas.Text(identity, center, y+10, AlignCenter, f, th.Muted)
	}
	s.Canvas.Select(current)
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
