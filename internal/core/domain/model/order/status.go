package order

import (
	"fmt"
	"strings"

	"cookieadmin/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	RECEBIDO ──> EM_PREPARO ──> PRONTO ──> EM_ROTA ──> CONCLUIDO
//	    │             │            │          │
//	    └─────────────┴────────────┴──────────┴──> EXTRAVIADO
//
// Transitions are total functions over Status: every value, including Unknown
// and out of range ones, is handled by an explicit case or rejected.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Recebido
	EmPreparo
	Pronto
	EmRota
	Concluido
	Extraviado
)

const (
	actionAdvance    = "advance"
	actionDispatch   = "dispatch"
	actionReportLoss = "report loss"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Recebido:   "RECEBIDO",
		EmPreparo:  "EM_PREPARO",
		Pronto:     "PRONTO",
		EmRota:     "EM_ROTA",
		Concluido:  "CONCLUIDO",
		Extraviado: "EXTRAVIADO",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Recebido, EmPreparo, Pronto, EmRota, Concluido, Extraviado}
}

// ParseStatus maps the wire name ("EM_PREPARO") back to a Status. Case is ignored.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, st := range Statuses() {
		if st.String() == name {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s < Recebido || s > Extraviado {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire name, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Concluido || s == Extraviado
}

// IsKitchenActionable reports whether the kitchen still has work on the order.
func (s Status) IsKitchenActionable() bool {
	return s == Recebido || s == EmPreparo
}

// AwaitsLogistics reports whether the kitchen is done and the order waits for a
// delivery route. The kitchen shows it without an advance action.
func (s Status) AwaitsLogistics() bool {
	return s == Pronto
}

// IsDispatchable reports whether the order may join a delivery route.
func (s Status) IsDispatchable() bool {
	return s.ValidateDispatch() == nil
}

// CanAdvance reports whether Advance would succeed from s.
func (s Status) CanAdvance() bool {
	_, err := s.Advance()
	return err == nil
}

// Advance is the forward kitchen/delivery step.
//
//	RECEBIDO   -> EM_PREPARO
//	EM_PREPARO -> PRONTO
//	EM_ROTA    -> CONCLUIDO
//
// PRONTO does not advance: only a delivery route moves it on.
func (s Status) Advance() (Status, error) {
	switch s {
	case Recebido:
		return EmPreparo, nil
	case EmPreparo:
		return Pronto, nil
	case EmRota:
		return Concluido, nil
	case Pronto, Concluido, Extraviado, Unknown:
		return Unknown, errs.NewIllegalTransitionError(s.String(), actionAdvance)
	default:
		return Unknown, errs.NewIllegalTransitionError(s.String(), actionAdvance)
	}
}

// ValidateDispatch checks, without transitioning, that the order may join a route.
func (s Status) ValidateDispatch() error {
	_, err := s.Dispatch()
	return err
}

// Dispatch moves PRONTO to EM_ROTA.
func (s Status) Dispatch() (Status, error) {
	switch s {
	case Pronto:
		return EmRota, nil
	case Recebido, EmPreparo, EmRota, Concluido, Extraviado, Unknown:
		return Unknown, errs.NewIllegalTransitionError(s.String(), actionDispatch)
	default:
		return Unknown, errs.NewIllegalTransitionError(s.String(), actionDispatch)
	}
}

// ReportLoss moves any non-terminal status to EXTRAVIADO.
func (s Status) ReportLoss() (Status, error) {
	switch s {
	case Recebido, EmPreparo, Pronto, EmRota:
		return Extraviado, nil
	case Concluido, Extraviado, Unknown:
		return Unknown, errs.NewIllegalTransitionError(s.String(), actionReportLoss)
	default:
		return Unknown, errs.NewIllegalTransitionError(s.String(), actionReportLoss)
	}
}
