package events

import (
	"context"
	"strconv"
	"sync"
	"time"

	"myroom/pkg/kafka"
	"myroom/pkg/logger"
	"myroom/pkg/model"
)

const (
	TypeHotelViewed    = "history.hotel_viewed"
	TypeSearchRecorded = "history.search_recorded"

	SchemaVersion = "1"
	Source        = "storefront"

	publishTimeout = 5 * time.Second
)

type HotelViewed struct {
	SessionID    string `json:"session_id"`
	HotelID      string `json:"hotel_id"`
	PropertyName string `json:"property_name"`
	ViewedAt     string `json:"viewed_at"`
}

type SearchRecorded struct {
	SessionID  string `json:"session_id"`
	LocationID string `json:"location_id"`
	Location   string `json:"location"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Rooms      int    `json:"rooms"`
	RecordedAt string `json:"recorded_at"`
}

// Publisher announces history changes. Implementations never fail the
// caller; delivery problems are only logged.
type Publisher interface {
	HotelViewed(ctx context.Context, sessionID string, hotel model.Hotel)
	SearchRecorded(ctx context.Context, sessionID string, search model.RecentSearch)
	Close() error
}

// MessagePublisher is satisfied by *kafka.Producer.
type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	producer MessagePublisher
	log      *logger.Logger
	now      func() time.Time
	wg       sync.WaitGroup
}

func NewKafkaPublisher(producer MessagePublisher, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		log:      log,
		now:      time.Now,
	}
}

func (p *KafkaPublisher) HotelViewed(ctx context.Context, sessionID string, hotel model.Hotel) {
	p.publish(ctx, sessionID, TypeHotelViewed, HotelViewed{
		SessionID:    sessionID,
		HotelID:      strconv.Itoa(hotel.PK),
		PropertyName: hotel.PropertyName,
		ViewedAt:     p.now().UTC().Format(time.RFC3339),
	})
}

func (p *KafkaPublisher) SearchRecorded(ctx context.Context, sessionID string, search model.RecentSearch) {
	p.publish(ctx, sessionID, TypeSearchRecorded, SearchRecorded{
		SessionID:  sessionID,
		LocationID: search.Location.ID,
		Location:   search.Location.Name,
		CheckIn:    search.CheckIn,
		CheckOut:   search.CheckOut,
		Adults:     search.Adults,
		Children:   search.Children,
		Rooms:      search.Rooms,
		RecordedAt: p.now().UTC().Format(time.RFC3339),
	})
}

// publish sends in the background so a slow broker never delays the
// visitor's request.
func (p *KafkaPublisher) publish(ctx context.Context, sessionID, eventType string, payload any) {
	msg, err := kafka.NewMessage().
		WithKey(sessionID).
		WithEventID("").
		WithEventType(eventType).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithValue(payload).
		Build()
	if err != nil {
		p.log.Error("Failed to build history event", "event_type", eventType, "error", err)
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := p.producer.Publish(pubCtx, msg); err != nil {
			p.log.Warn("Failed to publish history event",
				"event_type", eventType,
				"event_id", msg.EventID(),
				"error", err,
			)
		}
	}()
}

// Close waits for in-flight events and closes the producer.
func (p *KafkaPublisher) Close() error {
	p.wg.Wait()
	return p.producer.Close()
}

// Noop is used when no brokers are configured.
type Noop struct{}

func (Noop) HotelViewed(context.Context, string, model.Hotel)           {}
func (Noop) SearchRecorded(context.Context, string, model.RecentSearch) {}
func (Noop) Close() error                                               { return nil }
