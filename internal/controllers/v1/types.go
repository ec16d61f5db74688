package v1

// URIID is the path parameter for single-resource routes.
type URIID struct {
	ID string `uri:"id" binding:"required,uuid" format:"UUID"` // ID of the resource
}

// OperationResult is the response envelope for all mutations. Domain
// failures like a missing resource or an ownership violation are reported
// with Success set to false, not with an error status.
type OperationResult struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"category created successfully"`
}

func resultSuccess(message string) OperationResult {
	return OperationResult{Success: true, Message: message}
}

func resultFailure(message string) OperationResult {
	return OperationResult{Success: false, Message: message}
}

// PaginationRequest is embedded in every search request. A limit of 0 is
// rejected by validation, use offset/limit to page through results.
type PaginationRequest struct {
	Limit  int `json:"limit" binding:"required,min=1,max=200" example:"25"`  // Maximum number of items returned
	Offset int `json:"offset" binding:"omitempty,min=0" example:"0"`        // Offset of the first item returned
}
