package tickloop

// Delegate splits a tick into sequential update and render phases. Both run
// within a single tick, in order, before the tick's end-frame hook.
type Delegate interface {
	Update(rt *Runtime) error
	Render(rt *Runtime) error
}

// Run drives the tick loop with a Delegate. The loop contract is identical
// to RunWith; an Update error skips Render for that tick and stops the loop.
func (r *Runtime) Run(d Delegate) error {
	return r.RunWith(func(rt *Runtime) error {
		if err := d.Update(rt); err != nil {
			return err
		}
		return d.Render(rt)
	})
}
