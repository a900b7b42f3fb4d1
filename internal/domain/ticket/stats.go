package ticket

import (
	"time"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

// Stats summarizes one owner's tickets.
type Stats struct {
	OpenTickets       int
	InProgressTickets int
	ResolvedToday     int
	TotalTickets      int
	ByStatus          map[vo.TicketStatus]int
	ByPriority        map[vo.Priority]int
}

// ComputeStats counts tickets per status and priority. ResolvedToday counts
// resolved tickets whose resolved_at falls on now's business day.
func ComputeStats(tickets []*Ticket, now time.Time) Stats {
	s := Stats{
		ByStatus:   make(map[vo.TicketStatus]int, len(vo.AllStatuses)),
		ByPriority: make(map[vo.Priority]int, len(vo.AllPriorities)),
	}
	for _, st := range vo.AllStatuses {
		s.ByStatus[st] = 0
	}
	for _, p := range vo.AllPriorities {
		s.ByPriority[p] = 0
	}

	for _, t := range tickets {
		s.TotalTickets++
		s.ByStatus[t.Status()]++
		s.ByPriority[t.Priority()]++

		switch {
		case t.Status().IsOpen():
			s.OpenTickets++
		case t.Status().IsInProgress():
			s.InProgressTickets++
		case t.Status().IsResolved():
			if at := t.ResolvedAt(); at != nil && biztime.SameBizDay(*at, now) {
				s.ResolvedToday++
			}
		}
	}
	return s
}
