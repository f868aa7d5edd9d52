package transport_test

import (
	"sync"

	"github.com/samber/lo"
)

// recorder is an UpdateFunc that records updates as "name=value", or "name"
// for absent values.
type recorder struct {
	mu      sync.Mutex
	updates []string
	fail    map[string]error
}

func (r *recorder) apply(name string, raw *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.fail[name]; ok {
		return err
	}
	r.updates = append(r.updates, lo.TernaryF(raw == nil,
		func() string { return name },
		func() string { return name + "=" + *raw }))
	return nil
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.updates
	r.updates = nil
	return u
}
