package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/chamados-hub/apiserver/types"
)

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	List(ctx context.Context) ([]types.Ticket, error)
	Get(ctx context.Context, id int) (types.Ticket, error)
	Create(ctx context.Context, ticket types.Ticket) (types.Ticket, error)
	Replace(ctx context.Context, ticket types.Ticket) (types.Ticket, error)
	Patch(ctx context.Context, id int, patch types.TicketPatch) (types.Ticket, error)
	Delete(ctx context.Context, id int) error
}

// EventPublisher sends ticket lifecycle events to the message bus.
// *mq.MQ satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
}

// TicketService encapsulates ticket use-cases. When a publisher is
// configured, every successful write emits an event; publishing is
// best-effort and never fails the request.
type TicketService struct {
	repo      TicketRepository
	publisher EventPublisher
	channel   string
}

func NewTicketService(repo TicketRepository, publisher EventPublisher, channel string) *TicketService {
	return &TicketService{
		repo:      repo,
		publisher: publisher,
		channel:   channel,
	}
}

func (s *TicketService) List(ctx context.Context) ([]types.Ticket, error) {
	return s.repo.List(ctx)
}

func (s *TicketService) Get(ctx context.Context, id int) (types.Ticket, error) {
	return s.repo.Get(ctx, id)
}

func (s *TicketService) Create(ctx context.Context, ticket types.Ticket) (types.Ticket, error) {
	created, err := s.repo.Create(ctx, ticket)
	if err != nil {
		return types.Ticket{}, err
	}
	s.publishEvent(ctx, types.EventTicketCreated, created.ID, &created)
	return created, nil
}

func (s *TicketService) Replace(ctx context.Context, ticket types.Ticket) (types.Ticket, error) {
	updated, err := s.repo.Replace(ctx, ticket)
	if err != nil {
		return types.Ticket{}, err
	}
	s.publishEvent(ctx, types.EventTicketUpdated, updated.ID, &updated)
	return updated, nil
}

func (s *TicketService) Patch(ctx context.Context, id int, patch types.TicketPatch) (types.Ticket, error) {
	updated, err := s.repo.Patch(ctx, id, patch)
	if err != nil {
		return types.Ticket{}, err
	}
	s.publishEvent(ctx, types.EventTicketUpdated, updated.ID, &updated)
	return updated, nil
}

func (s *TicketService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, types.EventTicketDeleted, id, nil)
	return nil
}

func (s *TicketService) publishEvent(ctx context.Context, name string, ticketID int, ticket *types.Ticket) {
	if s.publisher == nil {
		return
	}

	event := types.TicketEvent{
		Event:      name,
		TicketID:   ticketID,
		Ticket:     ticket,
		OccurredAt: time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ticket event marshal failed: %v", err)
		return
	}

	attrs := map[string]string{"event": name}
	if _, err := s.publisher.Publish(ctx, s.channel, data, attrs); err != nil {
		log.Printf("ticket event publish failed: %v", err)
	}
}
