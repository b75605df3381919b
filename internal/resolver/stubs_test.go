package resolver_test

import (
	"context"
	"errors"
)

// NewFakeRunner creates a [FakeRunner] that answers interface queries
// from the provided table. Interfaces missing from the table fail with
// a non-zero exit error, the way ipconfig reports an unassigned interface.
func NewFakeRunner(answers map[string]string) *FakeRunner {
	return &FakeRunner{answers: answers}
}

// FakeRunner replays canned command output without executing anything.
type FakeRunner struct {
	answers map[string]string

	// Calls records the interface names queried, in order.
	Calls []string
}

func (r *FakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, error) {
	iface := args[len(args)-1]
	r.Calls = append(r.Calls, iface)

	out, ok := r.answers[iface]
	if !ok {
		return nil, errors.New("exit status 1")
	}
	return []byte(out), nil
}
