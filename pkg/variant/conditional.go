package variant

// Conditional values carry a Condition; they are the unit attached to the
// leaves of a variant tree.
type Conditional interface {
	// Condition returns the condition deciding where the value attaches.
	Condition() *Condition
}

var _ Conditional = &Part{}

// Part is a named Conditional.
type Part struct {
	name string
	cond *Condition
}

// NewPart returns a Part with the given display name and condition.
func NewPart(name string, cond *Condition) *Part {
	return &Part{name: name, cond: cond}
}

func (p *Part) Condition() *Condition {
	return p.cond
}

func (p *Part) Name() string {
	return p.name
}

func (p *Part) String() string {
	return p.name
}
