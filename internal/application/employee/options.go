package employee

import (
	"time"

	"github.com/jhoicas/cadastro-funcionarios/pkg/logger"
)

// Options dependências opcionais compartilhadas pelos casos de uso de funcionário.
// Campos nulos recebem implementações que não fazem nada.
type Options struct {
	Publisher EventPublisher
	Recorder  OperationRecorder
	Logger    *logger.Logger
	Location  *time.Location
	Now       func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Publisher == nil {
		o.Publisher = nopPublisher{}
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o Options) localNow() time.Time {
	return o.Now().In(o.Location)
}
