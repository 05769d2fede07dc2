package cli

import (
	"context"
	"fmt"

	"github.com/wetrippo/wishlist/internal/client/services"
)

func (a *App) List(ctx context.Context) {
	switch a.wishlist.State() {
	case services.StateAnonymous:
		if a.wishlist.ShowSignInAffordance() {
			fmt.Fprintln(a.out, "Sign in to see your wishlist.")
		} else {
			fmt.Fprintln(a.out, "Wishlist unavailable.")
		}
		return
	case services.StateEmpty:
		fmt.Fprintln(a.out, "Your wishlist is empty.")
		return
	}

	for i, item := range a.wishlist.Items() {
		fmt.Fprintf(a.out, "%d. %s [%s]\n", i+1, item.Title, item.ID)
		if item.ProductURL != "" {
			fmt.Fprintf(a.out, "   %s\n", item.ProductURL)
		}
	}
}

func (a *App) Refresh(ctx context.Context) {
	a.wishlist.Refresh(ctx)
	a.List(ctx)
}
