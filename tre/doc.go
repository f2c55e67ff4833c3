// Package tre implements the TRE (Tagged Record Extension) value store: a
// TRE instance is a {tag, optional id, Handler} tuple where Handler is the
// capability set a plugin (or the built-in default) provides — parse,
// serialize, size, set/get field, find, enumerate, clone.
//
// The source this library is ported from models a handler as a C
// function-pointer struct selected at runtime. Go has no direct analogue, so
// Handler is a plain interface: a *TRE never branches on which kind of
// handler it holds (default-raw, descriptive, or a plugin's custom vtable),
// it only invokes the capability set. See registry.PluginRegistry (its Lookup
// implements Resolver) for how identifiers are resolved to these handlers.
package tre
