// Package errors is the structured error type shared by every layer of
// rpg-statgen.
//
// An *Error carries a Code (transport independent), an optional Reason that
// tells apart errors with the same code, a message safe to show a player, an
// optional cause and free-form metadata.
//
// Creating errors:
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.FailedPrecondition("all abilities are assigned").
//	    WithReason("SESSION_COMPLETE")
//
// Wrapping keeps code, reason and metadata:
//
//	if err := repo.Update(ctx, c); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// Checking:
//
//	errors.IsNotFound(err)
//	errors.HasReason(err, "SLOT_ALREADY_CONSUMED")
//
// Handlers convert with ToGRPCError, which attaches an errdetails.ErrorInfo
// holding the reason and metadata; clients reverse it with FromGRPCError.
//
// Layer guidelines:
//   - repositories return NotFound / InvalidArgument and wrap storage failures
//   - the engine returns domain errors with reasons
//   - orchestrators validate input and wrap with business context
//   - handlers only convert
package errors
