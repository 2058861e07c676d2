package pdf

import "strings"

// BuildFilename returns "<prefix>_<id>_<party>[_<date>].pdf". Party names
// keep only ASCII letters and digits, ids additionally keep "_", "." and
// "-", dates keep "-" and map every other separator to "-".
func BuildFilename(prefix, id, party, date string) string {
	party = sanitize(strings.TrimSpace(party), '_', isAlnum)
	if party == "" {
		party = "N_A"
	}
	id = sanitize(strings.TrimSpace(id), '_', func(r rune) bool {
		return isAlnum(r) || r == '_' || r == '.' || r == '-'
	})
	if id == "" {
		id = "N_A"
	}

	parts := []string{prefix, id, party}
	if date = strings.TrimSpace(date); date != "" {
		parts = append(parts, sanitize(date, '-', func(r rune) bool {
			return isAlnum(r) || r == '-'
		}))
	}
	return strings.Join(parts, "_") + ".pdf"
}

// FilenameFor builds the filename of rec from its variant prefix.
func FilenameFor(rec Record) string {
	cfg, _ := ConfigFor(rec.Variant())
	h := rec.Header()
	return BuildFilename(cfg.FilenamePrefix, h.ID, h.PartyName, h.Date)
}

func sanitize(s string, repl rune, keep func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return repl
	}, s)
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
