package middleware

import (
	pkgLog "condopay-srv/pkg/log"
	"condopay-srv/pkg/scope"
)

type Middleware struct {
	l      pkgLog.Logger
	jwtMgr scope.Manager
}

func New(l pkgLog.Logger, jwtMgr scope.Manager) Middleware {
	return Middleware{
		l:      l,
		jwtMgr: jwtMgr,
	}
}
