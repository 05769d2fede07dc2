package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Logout(ctx context.Context) {
	if err := a.wishlist.SignOut(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Fprintln(a.out, "Signed out.")
}
