package services

import (
	"log"

	"github.com/tarimpazar/tarimpazar/internal/models"
	"gorm.io/gorm"
)

// Domain events decouple primary writes from their side effects. Publish runs
// after the triggering row is committed; subscriber failures are contained
// here and never reach the publisher.

type Event interface {
	EventName() string
}

type MessageSent struct {
	Message models.Message
}

func (MessageSent) EventName() string { return "message_sent" }

type ReportFiled struct {
	Report models.Report
}

func (ReportFiled) EventName() string { return "report_filed" }

type Subscriber func(conn *gorm.DB, event Event)

var subscribers []Subscriber

func Subscribe(fn Subscriber) {
	subscribers = append(subscribers, fn)
}

func Publish(conn *gorm.DB, event Event) {
	for _, fn := range subscribers {
		deliver(conn, event, fn)
	}
}

func deliver(conn *gorm.DB, event Event, fn Subscriber) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Subscriber panicked handling %s: %v", event.EventName(), r)
		}
	}()

	fn(conn, event)
}
