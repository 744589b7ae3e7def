package shape

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// piece is a range of runes sharing one direction and one script.
type piece struct {
	start, end int
	dir        di.Direction
	script     language.Script
}

// split divides runes into bidi runs in logical order, then splits each run
// wherever the script changes.
func (s *Shaper) split(runes []rune) []piece {
	var out []piece
	for _, r := range s.bidiRuns(runes) {
		out = append(out, splitScripts(runes, r)...)
	}
	return out
}

func (s *Shaper) bidiRuns(runes []rune) []piece {
	whole := piece{start: 0, end: len(runes), dir: s.base}

	def := bidi.LeftToRight
	if s.base.Progression() == di.TowardTopLeft {
		def = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(def)); err != nil {
		return []piece{whole}
	}
	order, err := p.Order()
	if err != nil {
		return []piece{whole}
	}

	runs := make([]piece, 0, order.NumRuns())
	start := 0
	for i := range order.NumRuns() {
		run := order.Run(i)
		_, end := run.Pos()
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, piece{start: start, end: min(end+1, len(runes)), dir: dir})
		start = end + 1
	}
	if start < len(runes) {
		runs = append(runs, piece{start: start, end: len(runes), dir: s.base})
	}
	return runs
}

// splitScripts splits r at script changes. Common and inherited runes join
// the script before them, or the first real script of the run.
func splitScripts(runes []rune, r piece) []piece {
	scripts := make([]language.Script, r.end-r.start)
	current := language.Common
	for i := r.start; i < r.end; i++ {
		sc := language.LookupScript(runes[i])
		if sc == language.Common || sc == language.Inherited {
			sc = current
		}
		scripts[i-r.start] = sc
		current = sc
	}
	// Leading neutrals take the first real script.
	first := language.Latin
	for _, sc := range scripts {
		if sc != language.Common {
			first = sc
			break
		}
	}
	for i := range scripts {
		if scripts[i] != language.Common {
			break
		}
		scripts[i] = first
	}

	var out []piece
	cur := piece{start: r.start, dir: r.dir, script: scripts[0]}
	for i := r.start + 1; i < r.end; i++ {
		if sc := scripts[i-r.start]; sc != cur.script {
			cur.end = i
			out = append(out, cur)
			cur = piece{start: i, dir: r.dir, script: sc}
		}
	}
	cur.end = r.end
	out = append(out, cur)
	return out
}
