// Package toast renders transient notification banners swapped in via
// htmx out-of-band updates.
package toast

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type Variant string

const (
	VariantSuccess   Variant = "success"
	VariantError     Variant = "error"
	VariantCelebrate Variant = "celebrate"
)

// Toast renders a single dismissable notification.
func Toast(variant Variant, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="toast toast-%s" role="status" data-toast>%s<button class="toast-close" data-toast-close aria-label="Dismiss">&times;</button></div>`,
			templ.EscapeString(string(variant)),
			templ.EscapeString(message),
		)
		return err
	})
}

// Celebration is the one-time banner shown when all three goals of a
// week get their reflection.
func Celebration() templ.Component {
	return Toast(VariantCelebrate, "🎉 All three goals reviewed. Great week!")
}
