package http

// MaxSignupBodySize is exported for testing
const MaxSignupBodySize = maxSignupBodySize
