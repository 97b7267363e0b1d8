// Package ecode defines the string error codes carried by result errors and
// maps them to transport statuses.
//
// # Predefined Codes
//
//	ecode.NotFound        // "not_found", 404
//	ecode.Conflict        // "conflict", 409
//	ecode.Validation      // "validation_failed", 400
//	ecode.Internal        // "internal", 500
//	ecode.HandlerNotFound // "handler_not_found", 501
//
// # Messages
//
//	ecode.Text(ecode.NotFound)
//	// "The requested resource could not be found"
//
//	ecode.FieldIsRequired("name")
//	// "name required"
//
// # Custom Codes
//
//	ecode.Register("insufficient_balance", "Insufficient account balance", http.StatusPaymentRequired)
//
// # HTTP Status Mapping
//
//	ecode.ToHTTPStatus(ecode.NotFound) // 404
//	ecode.ToHTTPStatus("unknown")      // 500
package ecode
