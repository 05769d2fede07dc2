package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/wetrippo/wishlist/internal/client/models"
)

func (a *App) Login(ctx context.Context) {

	login, err := GetSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	err = a.wishlist.SignIn(ctx, models.Credentials{Login: login, Password: password})
	if err != nil {
		log.Printf("Sign in unsuccessful: %s", err.Error())
		return
	}

	fmt.Fprintln(a.out, "Signed in.")
	a.List(ctx)
}
