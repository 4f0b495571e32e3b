package http

import (
	"sync"

	"cookieadmin/internal/generated/servers"

	"github.com/swaggo/swag"
)

// swaggerDoc serves the embedded OpenAPI document to the swag registry, which
// is where echo-swagger reads doc.json from.
type swaggerDoc struct {
	once sync.Once
	doc  string
}

func (d *swaggerDoc) ReadDoc() string {
	d.once.Do(func() {
		raw, err := servers.SpecJSON()
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

var registerSwagger sync.Once

// RegisterSwagger registers the document under swag.Name. Calling it again is a no-op.
func RegisterSwagger() {
	registerSwagger.Do(func() {
		swag.Register(swag.Name, &swaggerDoc{})
	})
}
