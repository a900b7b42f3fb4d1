package http

import (
	directoryUsecases "github.com/orris-inc/helpdesk/internal/application/directory/usecases"
	ticketUsecases "github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/helpdesk/internal/infrastructure/storage"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Ticket
	createTicketUC   *ticketUsecases.CreateTicketUseCase
	listTicketsUC    *ticketUsecases.ListTicketsUseCase
	getTicketUC      *ticketUsecases.GetTicketUseCase
	updateTicketUC   *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC   *ticketUsecases.DeleteTicketUseCase
	addMessageUC     *ticketUsecases.AddMessageUseCase
	listMessagesUC   *ticketUsecases.ListMessagesUseCase
	getTicketStatsUC *ticketUsecases.GetTicketStatsUseCase
	seedSampleUC     *ticketUsecases.SeedSampleDataUseCase

	// Directory
	createCustomerUC *directoryUsecases.CreateCustomerUseCase
	listCustomersUC  *directoryUsecases.ListCustomersUseCase
	createAgentUC    *directoryUsecases.CreateAgentUseCase
	listAgentsUC     *directoryUsecases.ListAgentsUseCase
}

// newUseCases wires use cases onto the selected stores. When autoSeed is set,
// listing an empty ticket collection seeds the sample data first.
func newUseCases(stores *storage.Stores, autoSeed bool, log logger.Interface) *allUseCases {
	markdownSvc := markdown.NewMarkdownService()

	seedSampleUC := ticketUsecases.NewSeedSampleDataUseCase(stores.Tickets, stores.Messages, stores.Seeds, seeds.Sample, log)

	var listSeeder ticketUsecases.SeedSampleDataExecutor
	if autoSeed {
		listSeeder = seedSampleUC
	}

	return &allUseCases{
		createTicketUC:   ticketUsecases.NewCreateTicketUseCase(stores.Tickets, log),
		listTicketsUC:    ticketUsecases.NewListTicketsUseCase(stores.Tickets, stores.Messages, listSeeder, log),
		getTicketUC:      ticketUsecases.NewGetTicketUseCase(stores.Tickets, stores.Messages, log),
		updateTicketUC:   ticketUsecases.NewUpdateTicketUseCase(stores.Tickets, stores.Messages, log),
		deleteTicketUC:   ticketUsecases.NewDeleteTicketUseCase(stores.Tickets, log),
		addMessageUC:     ticketUsecases.NewAddMessageUseCase(stores.Tickets, stores.Messages, stores.TxRunner, markdownSvc, log),
		listMessagesUC:   ticketUsecases.NewListMessagesUseCase(stores.Messages, markdownSvc, log),
		getTicketStatsUC: ticketUsecases.NewGetTicketStatsUseCase(stores.Tickets, log),
		seedSampleUC:     seedSampleUC,

		createCustomerUC: directoryUsecases.NewCreateCustomerUseCase(stores.Customers, log),
		listCustomersUC:  directoryUsecases.NewListCustomersUseCase(stores.Customers, log),
		createAgentUC:    directoryUsecases.NewCreateAgentUseCase(stores.Agents, log),
		listAgentsUC:     directoryUsecases.NewListAgentsUseCase(stores.Agents, log),
	}
}
