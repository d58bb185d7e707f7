package hooks

// Route maps a channel on a source registry to a channel on a target registry.
type Route struct {
	Source string
	Target string
}

// Same builds routes that keep the channel name unchanged.
func Same(names ...string) []Route {
	routes := make([]Route, 0, len(names))
	for _, name := range names {
		routes = append(routes, Route{Source: name, Target: name})
	}
	return routes
}

// Bubble re-emits every routed source channel on the target registry,
// arguments and handled result included. The returned func unbinds all routes.
func Bubble(source, target *Registry, routes ...Route) func() {
	var d Disposer
	for _, route := range routes {
		targetName := route.Target
		d.On(source, route.Source, func(args ...any) bool {
			return target.Trigger(targetName, args...)
		})
	}
	return d.Dispose
}
