package cli

// Namespace is the final name-to-value mapping produced by one parse,
// paired with the command that owns the callback to invoke.
type Namespace struct {
	Names map[string]any
	cli   *CLI
}

// CLI returns the command the parse routed to.
func (ns *Namespace) CLI() *CLI {
	return ns.cli
}

// Call binds the parsed names to the command's declared signature and
// invokes its callback. Commands without a callback return nil.
func (ns *Namespace) Call() (any, error) {
	if ns.cli == nil || ns.cli.callback == nil {
		return nil, nil
	}
	args, kwargs, err := bindArgs(ns.Names, ns.cli.signature)
	if err != nil {
		return nil, err
	}
	if err := runGlobalPreInvoke(); err != nil {
		return nil, err
	}
	return ns.cli.callback(args, kwargs)
}
