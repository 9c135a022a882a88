package sink

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/lpmitleo124/bestellapp/internal/export"
)

// Sink is an append-only row writer. Implementations must either persist all
// rows or none; callers rely on that to keep the cart intact on failure.
type Sink interface {
	Name() string
	AppendRows(ctx context.Context, rows []export.Row) error
}

// ErrUnavailable wraps every persistence failure. The attached reason is
// shown to the user verbatim, so it goes through Scrub first.
var ErrUnavailable = errors.New("sink unavailable")

// Unavailable wraps an underlying failure with a scrubbed reason.
func Unavailable(err error) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, Scrub(err.Error()))
}

var (
	passwordRe = regexp.MustCompile(`(?i)(password=)[^\s&]+`)
	userinfoRe = regexp.MustCompile(`://[^/@\s]+@`)
)

// Scrub redacts credential material from a failure reason before it crosses
// the trust boundary to the user. DSN passwords and URL userinfo are the two
// shapes the drivers can leak.
func Scrub(reason string) string {
	reason = passwordRe.ReplaceAllString(reason, "${1}***")
	reason = userinfoRe.ReplaceAllString(reason, "://***@")
	return reason
}
