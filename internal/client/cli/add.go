package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/wetrippo/wishlist/internal/client/models"
)

func (a *App) Add(ctx context.Context) {

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	imageURL, err := GetSimpleText(a.reader, "Enter image URL (optional)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	productURL, err := GetSimpleText(a.reader, "Enter product URL (optional)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	item, err := a.wishlist.Add(ctx, models.CreateItemDTO{
		Title:      title,
		ImageURL:   imageURL,
		ProductURL: productURL,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if item == nil {
		fmt.Fprintln(a.out, "Could not save the item, please try again.")
		return
	}

	fmt.Fprintf(a.out, "Added %q [%s]\n", item.Title, item.ID)
}
