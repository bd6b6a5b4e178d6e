// Package repository defines error types that are reused across the data
// layer. These sentinel values allow handlers to distinguish between
// failure scenarios without inspecting driver errors: ErrPlanNotFound maps
// to 404, ErrPlanExists to 409.
package repository

import "errors"

// ErrPlanNotFound is returned when no active plan matches the requested
// plan_id. Handlers should translate this into an HTTP 404 response.
var ErrPlanNotFound = errors.New("plan not found")

// ErrPlanExists is returned when an insert collides with an existing
// plan_id. The orchestrator retries with a suffixed slug; if a caller
// sees this error it should be translated into an HTTP 409 response.
var ErrPlanExists = errors.New("plan id already exists")
