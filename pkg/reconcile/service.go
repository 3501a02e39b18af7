// Package reconcile implements the edition reconciliation engine: it turns a
// flat list of raw provider records for a single literary work into an
// ordered set of edition groups, deciding along the way which records are the
// same physical item reported twice, which are different bindings of one
// edition, and which belong to different editions.
//
// The engine is pure and synchronous. It performs no I/O, never mutates its
// input, and holds no state across invocations; malformed records are dropped
// or skipped rather than surfaced as errors.
package reconcile

import (
	"github.com/foliobooks/folio/pkg/config"
)

// Service runs the reconciliation pipeline. It is stateless apart from the
// injected configuration and is safe for concurrent use.
type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg}
}
