// Package argbuild compiles the argument string for a wrapped external tool
// from a configuration object and an ordered descriptor table. The table is
// the integration contract with each wrapped executable: every descriptor
// maps one configuration property to one command-line token.
//
// Compile is a pure function of its two inputs. It only reads the passed-in
// configuration graph and has no error path: an unresolvable property path
// is a defined control-flow branch, never a fault.
package argbuild

// Descriptor maps one configuration property to one command-line token.
type Descriptor struct {
	// PropertyPath is a dot-separated sequence of property names resolved
	// against the configuration object, e.g. "ApiKeyCommand.Key".
	PropertyPath string
	// Option is the literal text emitted before the value. Callers encode
	// any separating space inside it (e.g. "-source "); text containing
	// "=" or whitespace is emitted as written. Option text is never quoted.
	Option string
	// ValueOverride, when non-empty, replaces whatever value would
	// otherwise be read from the configuration property.
	ValueOverride string
	// Required emits the descriptor even when the property is absent or
	// its value is empty.
	Required bool
	// QuoteValue always wraps the value portion in double quotes.
	QuoteValue bool
	// UseValueOnly suppresses the option text, emitting only the value.
	UseValueOnly bool
}
