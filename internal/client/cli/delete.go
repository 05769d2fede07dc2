package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
)

func (a *App) Delete(ctx context.Context) {

	id, err := GetSimpleText(a.reader, "Enter item id to delete", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	confirm, err := GetSimpleText(a.reader, "Delete this item? (y/N)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if strings.ToLower(confirm) != "y" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	ok, err := a.wishlist.Remove(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if !ok {
		fmt.Fprintln(a.out, "Could not delete the item, please try again.")
		return
	}

	fmt.Fprintln(a.out, "Deleted.")
}
