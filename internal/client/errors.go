// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import "errors"

// Submission errors. Request failures wrap one of ErrTransport, ErrStatus,
// ErrMalformedBody or ErrUnexpectedShape; use errors.Is to classify them.
var (
	ErrEmptyQuery      = errors.New("search query is empty")
	ErrAmbiguousQuery  = errors.New("form has more than one query field")
	ErrTransport       = errors.New("search request failed")
	ErrStatus          = errors.New("search server returned an error status")
	ErrMalformedBody   = errors.New("search response is not valid JSON")
	ErrUnexpectedShape = errors.New("search response is not a list of results")
	ErrSuperseded      = errors.New("superseded by a newer submission")
)
