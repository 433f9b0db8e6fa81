// Package middleware provides HTTP middleware for the Gin router.
//
// Included middleware:
//   - CORS: cross-origin resource sharing via gin-contrib/cors
//   - RateLimit: per-IP token-bucket limiting via golang.org/x/time/rate
//   - Gzip: response compression via klauspost/compress
package middleware
