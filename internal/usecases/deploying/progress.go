package deploying

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
)

type emitter struct {
	callback domain.ProgressFunc
}

func newEmitter(callback domain.ProgressFunc) *emitter {
	return &emitter{callback: callback}
}

func (e *emitter) info(phase, message string, progress int) {
	e.send(domain.ProgressEvent{Phase: phase, Message: message, Progress: progress, Status: domain.ProgressInfo})
}

func (e *emitter) fail(phase, message string, progress int) {
	e.send(domain.ProgressEvent{Phase: phase, Message: message, Progress: progress, Status: domain.ProgressError})
}

// send isola o deploy de falhas no callback do chamador
func (e *emitter) send(event domain.ProgressEvent) {
	logrus.WithFields(logrus.Fields{
		"phase":    event.Phase,
		"progress": event.Progress,
		"status":   event.Status,
	}).Debug("deploy: " + event.Message)

	if e.callback == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Warn("deploy: callback de progresso falhou")
		}
	}()
	e.callback(event)
}
