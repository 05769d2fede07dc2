// Package cli provides the interactive wishlist command-line client.
//
// It wires configuration, the local database (persisted session and item
// cache), the remote API client, and an interactive REPL driving the
// wishlist view controller. Typical flow: detect a host runtime, attempt
// auto-authentication, then execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - List, add, edit, and delete wishlist items
//   - Upload images to object storage via presigned URLs
//   - Print the shareable public link for the current list, and view
//     another owner's list from such a link
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
