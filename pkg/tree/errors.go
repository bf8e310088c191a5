package tree

import "errors"

// ErrSyntax is returned when translation content cannot be decoded.
var ErrSyntax = errors.New("tree: invalid syntax")
