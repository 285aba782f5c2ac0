package mapper

import "errors"

// errClientUnavailable is returned when semantic mapping is requested but
// no classifier collaborator is configured.
var errClientUnavailable = errors.New("classifier not configured: semantic mapping requires an API client")
