package cli

import (
	"context"
	"fmt"
	"log"
)

// View prints another owner's public wishlist, the read side of a shared
// link. Failures show as an empty list, same as the browser view.
func (a *App) View(ctx context.Context) {

	ownerID, err := GetSimpleText(a.reader, "Enter owner id from the share link", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	items := a.client.PublicList(ctx, ownerID)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "This wishlist is empty.")
		return
	}

	for i, item := range items {
		fmt.Fprintf(a.out, "%d. %s [%s]\n", i+1, item.Title, item.ID)
		if item.ProductURL != "" {
			fmt.Fprintf(a.out, "   %s\n", item.ProductURL)
		}
	}
}
