package system

import (
	"github.com/milk9111/embodiment/ecs"
	"github.com/sirupsen/logrus"
)

// EventLogSystem drains the tick's events, logs them and hands them to Sink.
// It belongs in the last stage.
type EventLogSystem struct {
	log  logrus.FieldLogger
	Sink func(ecs.Event)
}

func NewEventLogSystem(log logrus.FieldLogger, sink func(ecs.Event)) *EventLogSystem {
	return &EventLogSystem{log: orDefault(log), Sink: sink}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		s.log.WithFields(logrus.Fields{
			"event":  evt.Type,
			"entity": evt.Entity,
			"tick":   w.Tick(),
		}).Debug("event")
		if s.Sink != nil {
			s.Sink(evt)
		}
	}
}
