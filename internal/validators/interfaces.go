// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request models.
//
// Rules are declared with `validate` struct tags on the models and checked
// with github.com/go-playground/validator/v10. Field names in reported
// errors follow the json tags, so they can be returned to API clients as is
// (see [ToDetails]).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
