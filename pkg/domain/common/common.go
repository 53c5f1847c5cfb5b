// Package common holds domain errors shared across entity packages.
package common

import "errors"

// ErrTypeMismatch is returned when an operation targets a variant that
// lacks the required capability, e.g. interest accrual on a Cheque
// account or an employer update on a Company customer.
var ErrTypeMismatch = errors.New("operation not supported by this type")
