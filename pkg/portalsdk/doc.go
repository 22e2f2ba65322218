// Package portalsdk is a Go client for the Job Portal API. A Client
// handles the unauthenticated endpoints; signing in yields a Session
// that stores the bearer token, decodes the identity claims locally
// and attaches the token to every job request.
package portalsdk
