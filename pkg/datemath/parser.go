package datemath

import (
	"fmt"
	"time"
)

// ISOLayout is the canonical timestamp format exchanged with clients:
// a naive local ISO-8601 datetime, e.g. "2026-02-06T17:00:00".
const ISOLayout = "2006-01-02T15:04:05"

// isoLayouts are the accepted input layouts, most specific first.
var isoLayouts = []string{
	time.RFC3339,
	ISOLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// timeLayouts are the accepted bare-time layouts, e.g. "17:00".
var timeLayouts = []string{
	"15:04:05",
	"15:04",
}

// Parser normalizes and combines timestamps in a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new parser for the given IANA timezone string,
// e.g. "Asia/Jerusalem".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseISO parses an ISO-8601 datetime string. Naive strings (no offset) are
// interpreted in the parser's timezone.
func (p *Parser) ParseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable ISO datetime: %q", s)
}

// NormalizeISO parses s and reformats it as the canonical naive ISO layout.
func (p *Parser) NormalizeISO(s string) (string, error) {
	t, err := p.ParseISO(s)
	if err != nil {
		return "", err
	}
	return t.Format(ISOLayout), nil
}

// CombineTime combines a bare time-of-day string ("17:00") with the date of
// base, returning a canonical ISO datetime string.
func (p *Parser) CombineTime(timeStr string, base time.Time) (string, error) {
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, timeStr)
		if err != nil {
			continue
		}
		combined := time.Date(
			base.Year(), base.Month(), base.Day(),
			t.Hour(), t.Minute(), t.Second(), 0,
			p.location,
		)
		return combined.Format(ISOLayout), nil
	}
	return "", fmt.Errorf("unparseable time of day: %q", timeStr)
}

// SameDay reports whether a and b fall on the same calendar day in the
// parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	a, b = a.In(p.location), b.In(p.location)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's calendar day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
