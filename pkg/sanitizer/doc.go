// Package sanitizer normalizes free-form user input before validation.
// Sanitization never rejects anything; it only trims and canonicalizes.
// Rejection is the validator's job.
package sanitizer
