package handler

const (
	oopsErr      = "Oops! Something went wrong. Please try again later."
	unauthorized = "Unauthorized"
)

const (
	headerAPIKey       = "x-api-key"
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerMaxAge       = "Access-Control-Max-Age"
)

const (
	allowMethods = "POST, OPTIONS"
	allowHeaders = "Content-Type, x-api-key"
	preflightAge = "86400"
)
