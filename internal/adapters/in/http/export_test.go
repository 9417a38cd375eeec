package http

// MapError exposes the error mapping for tests.
var MapError = mapError
