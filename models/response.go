package models

// Response shapes used by the Swagger annotations in handlers.

type MessageResponse struct {
	Msg string `json:"msg" example:"Request submitted successfully"`
}

type ErrorResponse struct {
	Msg   string `json:"msg" example:"Error fetching requests"`
	Error string `json:"error,omitempty" example:"context deadline exceeded"`
}

type FieldError struct {
	Field string `json:"field" example:"FromTime"`
	Tag   string `json:"tag" example:"isotime"`
	Msg   string `json:"message" example:"Field 'FromTime' must be an ISO-8601 timestamp."`
}

type ValidationErrorResponse struct {
	Msg    string       `json:"msg" example:"All fields are required"`
	Errors []FieldError `json:"errors"`
}

type UnauthorizedErrorResponse struct {
	Msg string `json:"msg" example:"Authorization header is required"`
}

type ForbiddenErrorResponse struct {
	Msg string `json:"msg" example:"Unauthorized: Access restricted to staff"`
}

type NotFoundErrorResponse struct {
	Msg string `json:"msg" example:"Outpass not found or not approved"`
}

type QRCodeResponse struct {
	ID     string `json:"id" example:"665f1c2e8b3f4a2d9c0e1a77"`
	QRCode string `json:"qrCode" example:"iVBORw0KGgoAAAANSUhEUgAAAQAAAAEAAQMAAABmvDolAAAABlBMVEX..."`
	ToTime string `json:"toTime" example:"2026-10-16T20:00:00Z"`
}
