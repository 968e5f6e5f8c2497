/*
Package response turns raw bridge values into domain.Response and decodes pasted images.

The bridge speaks two dialects. The current one sends a small record with a
"type" discriminator; the legacy one sends a plain string that is either an
"error: ..." message or a data URL. Normalize is the only place that knows
about both. Everything downstream works on the normalized domain.Response.
*/
package response
