package reading

import "log/slog"

// Lazy loads the analyzer on the first Reading call. If loading fails the
// failure is logged once and every reading comes back empty.
type Lazy struct {
	Logger *slog.Logger

	analyzer *Analyzer
	loaded   bool
}

func (l *Lazy) Reading(word string) string {
	if !l.loaded {
		l.loaded = true
		a, err := NewAnalyzer()
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("reading analyzer unavailable", slog.String("error", err.Error()))
			}
		} else {
			l.analyzer = a
		}
	}
	if l.analyzer == nil {
		return ""
	}
	return l.analyzer.Reading(word)
}
