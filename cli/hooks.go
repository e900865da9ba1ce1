package cli

// Hook is a function that runs right before the action of any command in an [App].
// Hooks see the same [Invocation] as the action.
type Hook func(inv *Invocation) error

// BeforeAction registers a [Hook].
// If an error is returned from a [Hook], then the action will not be executed, and the error will be returned from Run instead.
// Note that hooks don't run when help or the version is shown, or when validation fails, since no action would run either.
//
// Passing a nil [Hook] to this function will panic.
func (a *App) BeforeAction(fn Hook) *App {
	if fn == nil {
		panic("nil hook function")
	}
	a.hooks = append(a.hooks, fn)
	return a
}

func (a *App) runHooks(inv *Invocation) error {
	for _, fn := range a.hooks {
		if err := fn(inv); err != nil {
			return err
		}
	}
	return nil
}
