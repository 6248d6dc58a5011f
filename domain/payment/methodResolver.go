package payment

type IMethodResolver interface {
	// AllowedMethods computes the allowed method set of a seller from its
	// enabled-methods configuration, substituting DefaultMethods when the
	// seller configured none.
	AllowedMethods(enabled []Method) []Method

	// EffectiveMethod resolves the single method in effect for a vendor group.
	// Resolution is three-tier: the buyer selection if present and still
	// allowed, else the item default if allowed, else the first allowed
	// method. A selection that became disallowed falls back silently.
	EffectiveMethod(enabled []Method, selection *Method, itemDefault Method) Method
}

func NewResolver() IMethodResolver {
	return &methodResolverImpl{}
}
