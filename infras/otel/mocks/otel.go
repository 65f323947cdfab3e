package mocks

import (
	"context"
	"skyline/infras/otel"
	"sync"
)

// Otel is an in-memory otel.Otel for tests. Its scopes export nothing, but the span
// names and traced errors are kept so tests can assert on them.
type Otel struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.spans = append(o.spans, spanName)

	return ctx, &scope{owner: o}
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans lists span names in the order they were opened.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

// Errors lists every error passed to TraceError or a non-nil TraceIfError.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.errors...)
}

type scope struct {
	owner *Otel
}

func (s *scope) End()                           {}
func (s *scope) AddEvent(_ string)              {}
func (s *scope) SetAttribute(_ string, _ any)   {}
func (s *scope) SetAttributes(_ map[string]any) {}
func (s *scope) TraceID() string                { return "" }

func (s *scope) TraceError(err error) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.owner.errors = append(s.owner.errors, err)
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
