package http

import (
	"github.com/sheisstarwithoutmoon/SafeLink/internal/application/alert"
	jwtinfra "github.com/sheisstarwithoutmoon/SafeLink/internal/infrastructure/jwt"
)

// Deps holds all infrastructure dependencies for the router.
// Verifier may be nil: identity is optional and requests are served
// identically without it.
type Deps struct {
	AlertRepo alert.Store
	Sender    alert.Sender
	Verifier  *jwtinfra.Verifier
}
