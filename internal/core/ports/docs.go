// Package ports declares the contracts between the application core and the
// outbound adapters: message delivery targets and the mock delivery platforms.
package ports
