package payment

type methodResolverImpl struct {
}

func (resolver methodResolverImpl) AllowedMethods(enabled []Method) []Method {
	if len(enabled) == 0 {
		allowed := make([]Method, len(DefaultMethods))
		copy(allowed, DefaultMethods)
		return allowed
	}

	allowed := make([]Method, 0, len(enabled))
	for _, method := range enabled {
		if method.Ordinal() < 0 {
			continue
		}
		allowed = append(allowed, method)
	}

	if len(allowed) == 0 {
		allowed = append(allowed, DefaultMethods...)
	}
	return allowed
}

func (resolver methodResolverImpl) EffectiveMethod(enabled []Method, selection *Method, itemDefault Method) Method {
	allowed := resolver.AllowedMethods(enabled)

	if selection != nil && contains(allowed, *selection) {
		return *selection
	}

	if contains(allowed, itemDefault) {
		return itemDefault
	}

	return allowed[0]
}

func contains(methods []Method, method Method) bool {
	for _, candidate := range methods {
		if candidate == method {
			return true
		}
	}
	return false
}
