package http

import (
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	directoryHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/directory"
	ticketHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler    *handlers.HealthHandler
	ticketHandler    *ticketHandlers.TicketHandler
	directoryHandler *directoryHandlers.DirectoryHandler
}

func newHandlers(ucs *allUseCases, backend string, ping handlers.PingFunc, log logger.Interface) *allHandlers {
	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(backend, ping, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.listTicketsUC,
			ucs.getTicketUC,
			ucs.updateTicketUC,
			ucs.deleteTicketUC,
			ucs.addMessageUC,
			ucs.listMessagesUC,
			ucs.getTicketStatsUC,
			ucs.seedSampleUC,
			log,
		),
		directoryHandler: directoryHandlers.NewDirectoryHandler(
			ucs.createCustomerUC,
			ucs.listCustomersUC,
			ucs.createAgentUC,
			ucs.listAgentsUC,
			log,
		),
	}
}
