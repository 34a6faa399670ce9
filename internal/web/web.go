// Package web serves the onboarding wizard as server-rendered HTML.
//
// Every session gets its own wizard.Controller, keyed by the onboard_session cookie.
// Pages are plain forms; each action posts, mutates the session, and redirects back to the index (303 See Other),
// so the browser's back button never resubmits.
//
// Routes
//
//	GET  /                      → current step of the session
//	POST /next                  → advance one step
//	POST /back                  → retreat one step
//	POST /toggle                → flip the choice named by form field id
//	POST /reset                 → start over
//	GET  /api/view              → the wizard.View as JSON
//	GET  /data/topics.json      → the loaded topics dataset
//	GET  /data/newsletters.json → the loaded newsletters dataset
//	GET  /healthz               → liveness
//
// The /data routes use the same document shape services.HTTPSource reads, so one instance can serve
// another's datasets.
package web
