// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jury

import "github.com/danielhkuo/parade-jury/auth"

type Login struct {
	authz Authorizer
}

func NewLogin(authz Authorizer) *Login {
	return &Login{authz: authz}
}

// Execute normalizes the code and reports whether it is known.
// An unknown code is not an error.
func (l *Login) Execute(code string) (string, bool) {
	normalized := auth.NormalizeCode(code)
	return normalized, l.authz.Login(normalized)
}
