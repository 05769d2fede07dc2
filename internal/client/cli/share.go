package cli

import (
	"context"
	"fmt"
)

// Share prints the public link to the current owner's wishlist.
func (a *App) Share(ctx context.Context) {
	ownerID := a.authService.OwnerID(ctx)
	if ownerID == "" {
		fmt.Fprintln(a.out, "Sign in to share your wishlist.")
		return
	}
	fmt.Fprintf(a.out, "%s/%s\n", a.config.ShareBaseURL, ownerID)
}
