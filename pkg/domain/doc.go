/*
Package domain contains the core models of the paste button widget.

It defines what the widget sends to the host bridge, what comes back from it,
and the uniform result handed to the caller. This package is kept pure and
free of external dependencies like I/O or persistence.

# Key Entities

  - BridgeParams: The outbound parameters forwarded to the bridge on every render.
  - Response: The normalized bridge reply (Empty, Clear, Error or Image).
  - PasteResult: The decoded outcome of a single button invocation.
  - Notification: A user-facing error message the host should display.
*/
package domain
