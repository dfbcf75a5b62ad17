// Package dates turns user-supplied start dates into calendar dates. Plain
// ISO dates are parsed directly; anything else is evaluated as a JavaScript
// expression with the current time bound to `now` (Unix milliseconds).
package dates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"

	"github.com/va6996/tourplanner/log"
	"github.com/va6996/tourplanner/tourplan"
)

// ISOLayout is the layout accepted without JavaScript evaluation.
const ISOLayout = "2006-01-02"

// Resolver evaluates start-date expressions.
type Resolver struct {
	Now func() time.Time
}

// NewResolver returns a Resolver using the wall clock.
func NewResolver() *Resolver {
	return &Resolver{Now: time.Now}
}

// Resolve returns the calendar date described by expression, e.g.
// "2024-06-01", "new Date(now + 86400000)" or "'2024-06-01T10:00:00Z'".
// Dates and timestamps are reduced to their UTC calendar day, so "tomorrow"
// means tomorrow in UTC rather than in the local zone.
// Evaluation stops with ctx's error once ctx is done.
func (r *Resolver) Resolve(ctx context.Context, expression string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return time.Time{}, fmt.Errorf("date expression is required")
	}

	if d, err := time.Parse(ISOLayout, expression); err == nil {
		return d, nil
	}

	log.Debugf(ctx, "Evaluating date expression: %s", expression)

	vm := goja.New()
	if err := vm.Set("now", r.Now().UnixMilli()); err != nil {
		return time.Time{}, fmt.Errorf("failed to set 'now': %w", err)
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	val, err := vm.RunString(expression)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return time.Time{}, fmt.Errorf("date expression interrupted: %w", ctxErr)
		}
		return time.Time{}, fmt.Errorf("js execution failed: %w", err)
	}

	exported := val.Export()
	if exported == nil {
		return time.Time{}, fmt.Errorf("result is null or undefined")
	}

	switch v := exported.(type) {
	case time.Time:
		return tourplan.CalendarDate(v.UTC()), nil
	case string:
		if d, err := time.Parse(ISOLayout, v); err == nil {
			return d, nil
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return tourplan.CalendarDate(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("result is not a valid Date object or ISO string: %v", exported)
}
