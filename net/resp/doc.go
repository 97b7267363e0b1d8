// Package resp writes JSON responses for results.
//
// # Response Structure
//
// Failures follow a standard structure:
//
//	{
//	  "code": "validation_failed",
//	  "message": "One or more validation failures occurred",
//	  "errors": {"name": ["name is required"]}
//	}
//
// # Mapping
//
//	validation failures          → 400 with every field message
//	first error with HTTP status → that status, code and message
//	anything else                → 500 internal, details hidden
//
// # Usage
//
//	res := mediator.Send[GetProduct, Product](ctx, d, q)
//	resp.Value(w, http.StatusOK, res)
//
//	resp.Result(w, mediator.Execute(ctx, d, cmd))
package resp
