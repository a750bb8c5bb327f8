// Package errs provides the error types shared by the order pipeline and the
// shipment gateway.
//
// Each type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the parameter name and optional cause
//   - NewXError and NewXErrorWithCause constructors
//   - Unwrap returning the sentinel
//
// Available types:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value falls outside its accepted bounds
//   - ObjectNotFoundError: a lookup matched nothing
//   - ObjectAlreadyExistsError: a write collided with a uniqueness rule
package errs
