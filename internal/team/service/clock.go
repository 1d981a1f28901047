package service

import (
	"time"

	"github.com/orthonext/team/pkg/idx"
)

// stamp returns the current time from now, or the wall clock when now is nil,
// truncated to microseconds: the finest precision every store keeps.
func stamp(now func() time.Time) time.Time {
	t := time.Now()
	if now != nil {
		t = now()
	}
	return t.UTC().Truncate(time.Microsecond)
}

// newID draws from ids, or the process-wide generator when ids is nil.
func newID(ids *idx.Generator, at time.Time) string {
	if ids != nil {
		return ids.NewAt(at).String()
	}
	return idx.NewAt(at).String()
}
