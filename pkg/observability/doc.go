/*
Package observability provides Prometheus instrumentation for the paste button widget.

It counts widget outcomes by action, user-facing notifications and image
decoding failures, and times the bridge round trip.
*/
package observability
