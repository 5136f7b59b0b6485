// Package http provides HTTP handlers and middleware for the portal API.
//
// The router exposes the following endpoints:
//   - POST /sessions: signs in. Body: {"email","password"}. Response:
//     {"session","role"}. GET /sessions/current returns the persisted
//     session snapshot; DELETE /sessions/current signs out.
//   - POST /accounts: registers a new account and signs it in, exchanging
//     the same payload shape as /sessions plus "name".
//   - GET /programs (optional ?q= substring filter), POST /programs,
//     PUT /programs/{id}, DELETE /programs/{id}: wellness catalog endpoints;
//     mutations require the administrator role. POST /programs/{id}/join and
//     POST /programs/{id}/leave record participation for the current
//     identity.
//   - GET /offerings: the fixed bookable service catalog.
//   - GET /appointments, POST /appointments, DELETE /appointments/{id}:
//     appointment booking endpoints. Booking requires a signed-in identity.
//   - GET /calendar: calendar events owned by the current identity.
//   - GET /reminders, POST /reminders, DELETE /reminders/{id}: calendar
//     reminder endpoints.
//   - GET /preferences/theme, PUT /preferences/theme: dark mode preference.
//
// There are no session tokens: the signed-in identity is the single
// persisted session snapshot, resolved per request by middleware.
// Request/response DTOs live alongside their respective handlers so tests
// and documentation share the same ground truth.
package http
