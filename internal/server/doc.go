// Package server exposes a localize.Service over HTTP with a chi router.
//
// Routes:
//
//	GET    /translate?key=&count=&p=name:value   translated text (text/plain or JSON)
//	GET    /locale                               active resolution
//	PUT    /locale                               switch locale: {"locale","reload","scope"}
//	GET    /locales                              available locale folders
//	POST   /scopes/{scope}                       load a scope ("_" is the root)
//	DELETE /scopes/{scope}                       unload a scope
//	GET    /health/live, /health/ready           health probes
//
// Run serves until the context ends or a termination signal arrives and
// optionally refreshes the loaded translations on a cron schedule.
package server
