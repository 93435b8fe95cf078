// Package query filters and aggregates in-memory bilty collections for
// list and dashboard views. Everything here is pure: input slices are
// never mutated and their order is preserved.
package query

import (
	"strings"

	"safeindiatransport/models"
)

// Window bounds a filter to recently dated bilties.
type Window string

const (
	WindowAll    Window = "all"
	WindowLast7  Window = "7d"
	WindowLast30 Window = "30d"
)

const dayMs = 24 * 60 * 60 * 1000

func (w Window) days() int64 {
	switch w {
	case WindowLast7:
		return 7
	case WindowLast30:
		return 30
	default:
		return 0
	}
}

// Criteria are the optional list filters, combined with logical AND.
// Zero values impose no constraint.
type Criteria struct {
	Status string // exact status, or "" / "all" for no filter
	Recent Window // age bound on the bilty date
	Search string // case-insensitive substring search
}

// Apply returns the bilties matching c, in their input order. now is unix
// milliseconds and anchors the recency window.
func Apply(now int64, bilties []*models.Bilty, c Criteria) []*models.Bilty {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	var out []*models.Bilty
	for _, b := range bilties {
		if c.Status != "" && c.Status != "all" && b.Status != c.Status {
			continue
		}
		if days := c.Recent.days(); days > 0 {
			if now-b.Date > days*dayMs {
				continue
			}
		}
		if search != "" && !strings.Contains(haystack(b), search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// haystack joins the searchable fields with single spaces, skipping blanks.
func haystack(b *models.Bilty) string {
	fields := []string{b.BiltyNumber, b.Origin, b.Destination, b.GoodsDescription}
	parts := fields[:0]
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
