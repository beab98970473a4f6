package scheduling

import (
	"sort"

	"mini-dating-backend/internal/models"
)

// Overlap is a non-empty intersection of two same-date slots
type Overlap struct {
	Date      string
	StartTime string
	EndTime   string
}

// FindFirstOverlap sweeps both slot lists in (date, start) order and returns
// the first window where they intersect, or nil when they never do.
// Touching endpoints do not count as an overlap.
func FindFirstOverlap(slotsA, slotsB []models.TimeSlot) (*Overlap, error) {
	a, err := sortedSpans(slotsA)
	if err != nil {
		return nil, err
	}
	b, err := sortedSpans(slotsB)
	if err != nil {
		return nil, err
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		sa, sb := a[i], b[j]
		switch {
		case sa.slot.Date < sb.slot.Date:
			i++
			continue
		case sa.slot.Date > sb.slot.Date:
			j++
			continue
		}

		if max(sa.start, sb.start) < min(sa.end, sb.end) {
			start, err := LaterOf(sa.slot.StartTime, sb.slot.StartTime)
			if err != nil {
				return nil, err
			}
			end, err := EarlierOf(sa.slot.EndTime, sb.slot.EndTime)
			if err != nil {
				return nil, err
			}
			return &Overlap{Date: sa.slot.Date, StartTime: start, EndTime: end}, nil
		}

		// The slot ending first cannot meet anything further along the
		// other list.
		if sb.end < sa.end {
			j++
		} else {
			i++
		}
	}
	return nil, nil
}

func sortedSpans(slots []models.TimeSlot) ([]span, error) {
	spans, err := toSpans(slots)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].slot.Date != spans[j].slot.Date {
			return spans[i].slot.Date < spans[j].slot.Date
		}
		return spans[i].start < spans[j].start
	})
	return spans, nil
}
