package cli

import (
	"fmt"
	"time"
)

// SessionsPruneCmd deletes expired sessions out of band, for installs that do
// not keep the server running.
type SessionsPruneCmd struct{}

func (c *SessionsPruneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	n, err := ctx.Store.DeleteExpiredSessions(time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Pruned %d expired session(s)\n", n)
	return nil
}
