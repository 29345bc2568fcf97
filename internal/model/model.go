// Package model holds the entities exposed by the API.
//
// Each entity lives in its own sub-package with the stored shape
// and the request payloads that create or replace it.
package model

// CreatedResponse is the body returned by every create endpoint.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
