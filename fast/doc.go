// Package fast is documented in message.go.
package fast
