/*
Package ports defines the driven ports (interfaces) of the paste button widget.

These interfaces decouple the widget from the host application, so the
decoding logic can be exercised without a browser or a real session store.

# Key Interfaces

  - Bridge: Renders the browser-side widget and returns its current value.
  - SessionState: Read-only view of the host session state.
  - SessionStore: Writable session state used by hosts and adapters.
  - Notifier: Displays user-facing error notifications.
*/
package ports
