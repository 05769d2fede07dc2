package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/wetrippo/wishlist/internal/client/models"
)

// Edit prompts for an item id and new field values. An empty answer leaves
// the field unchanged on the server.
func (a *App) Edit(ctx context.Context) {

	id, err := GetSimpleText(a.reader, "Enter item id to edit", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var dto models.UpdateItemDTO

	title, err := GetSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if title != "" {
		dto.Title = &title
	}

	imageURL, err := GetSimpleText(a.reader, "New image URL (empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if imageURL != "" {
		dto.ImageURL = &imageURL
	}

	productURL, err := GetSimpleText(a.reader, "New product URL (empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if productURL != "" {
		dto.ProductURL = &productURL
	}

	item, err := a.wishlist.Edit(ctx, id, dto)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if item == nil {
		fmt.Fprintln(a.out, "Could not update the item, please try again.")
		return
	}

	fmt.Fprintf(a.out, "Updated %q [%s]\n", item.Title, item.ID)
}
